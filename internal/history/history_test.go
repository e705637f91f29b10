package history_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/keziahdorothy14/flashsprint/internal/history"
	"github.com/keziahdorothy14/flashsprint/internal/models"
	"github.com/keziahdorothy14/flashsprint/internal/testutil"
)

type HistorySuite struct {
	suite.Suite
	db *history.DB
}

func (s *HistorySuite) SetupTest() {
	s.db = testutil.NewTestHistory(s.T())
}

func (s *HistorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *HistorySuite) record(cardID int, verdict string, interval int, at time.Time) {
	err := s.db.Record(context.Background(), models.ReviewRecord{
		CardID:     cardID,
		Verdict:    verdict,
		Interval:   interval,
		DueIn:      interval,
		ReviewedAt: at,
	})
	s.Require().NoError(err)
}

func (s *HistorySuite) TestRecordAndList() {
	now := time.Now().UTC().Truncate(time.Second)
	s.record(1, "correct", 2, now.Add(-2*time.Hour))
	s.record(1, "incorrect", 1, now.Add(-time.Hour))
	s.record(2, "correct", 2, now)

	records, err := s.db.Records(context.Background(), history.RecordFilter{})
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal(2, records[0].CardID, "most recent first")
	s.Equal("incorrect", records[1].Verdict)
}

func (s *HistorySuite) TestRecordsFilterByCard() {
	now := time.Now()
	s.record(1, "correct", 2, now)
	s.record(2, "correct", 2, now)

	records, err := s.db.Records(context.Background(), history.RecordFilter{CardID: 2})
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(2, records[0].CardID)
}

func (s *HistorySuite) TestRecordsFilterByVerdictAndSince() {
	now := time.Now().UTC()
	s.record(1, "correct", 2, now.Add(-48*time.Hour))
	s.record(1, "incorrect", 1, now.Add(-time.Minute))
	s.record(1, "correct", 2, now)

	records, err := s.db.Records(context.Background(), history.RecordFilter{
		Verdict: "correct",
		Since:   now.Add(-time.Hour),
	})
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("correct", records[0].Verdict)
}

func (s *HistorySuite) TestRecordsLimit() {
	now := time.Now()
	for i := 0; i < 5; i++ {
		s.record(1, "correct", 2, now.Add(time.Duration(i)*time.Second))
	}

	records, err := s.db.Records(context.Background(), history.RecordFilter{Limit: 3})
	s.Require().NoError(err)
	s.Len(records, 3)
}

func (s *HistorySuite) TestStats() {
	now := time.Now()
	s.record(1, "correct", 2, now)
	s.record(1, "correct", 4, now)
	s.record(2, "incorrect", 1, now)

	stat, err := s.db.Stats(context.Background(), history.RecordFilter{})
	s.Require().NoError(err)
	s.Equal(3, stat.Reviews)
	s.Equal(2, stat.Correct)
	s.Equal(1, stat.Incorrect)

	stat, err = s.db.Stats(context.Background(), history.RecordFilter{CardID: 2})
	s.Require().NoError(err)
	s.Equal(1, stat.Reviews)
	s.Equal(0, stat.Correct)
}

func (s *HistorySuite) TestStatsEmpty() {
	stat, err := s.db.Stats(context.Background(), history.RecordFilter{})
	s.Require().NoError(err)
	s.Equal(0, stat.Reviews)
	s.Equal(0, stat.Correct)
	s.Equal(0, stat.Incorrect)
}

func TestHistorySuite(t *testing.T) {
	suite.Run(t, new(HistorySuite))
}
