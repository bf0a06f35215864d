package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/abhayg44/RFP-System/internal/core/domain"
	"github.com/abhayg44/RFP-System/mocks"
)

type EvaluationServiceSuite struct {
	suite.Suite
	storage           *mocks.EvaluationStorage
	evaluationService *EvaluationService
}

func TestEvaluationService(t *testing.T) {
	suite.Run(t, new(EvaluationServiceSuite))
}

func (suite *EvaluationServiceSuite) SetupTest() {
	suite.storage = &mocks.EvaluationStorage{}
	suite.evaluationService = NewEvaluationService(suite.storage)
}

func (suite *EvaluationServiceSuite) TearDownTest() {
	suite.storage.AssertExpectations(suite.T())
}

func (suite *EvaluationServiceSuite) TestApply_UpsertsByRFPID() {
	ctx := context.Background()
	before := time.Now()
	msg := &domain.EvaluationResultMessage{
		RFPID:       "507f1f77bcf86cd799439011",
		ClientEmail: "c@x.com",
		Timestamp:   "2026-08-30T10:00:00Z",
		Evaluation: domain.EvaluationResult{
			OverallBestTop3: []domain.RankedEntry{
				{Proposal: rawJSON(`{"_id":"507f1f77bcf86cd799439012"}`), Reasoning: "best overall value"},
			},
			TotalProposalsEvaluated: 4,
		},
	}

	suite.storage.EXPECT().UpsertByRFPID(ctx, mock.MatchedBy(func(e *domain.Evaluation) bool {
		return e.RFPID == "507f1f77bcf86cd799439011" &&
			e.ClientEmail == "c@x.com" &&
			e.SourceTimestamp == "2026-08-30T10:00:00Z" &&
			e.Result.TotalProposalsEvaluated == 4 &&
			!e.EvaluatedAt.Before(before)
	})).Return(nil)

	err := suite.evaluationService.Apply(ctx, msg)
	suite.NoError(err)
}

func (suite *EvaluationServiceSuite) TestApply_StorageErrorPropagates() {
	ctx := context.Background()
	msg := &domain.EvaluationResultMessage{RFPID: "507f1f77bcf86cd799439011"}

	suite.storage.EXPECT().UpsertByRFPID(ctx, mock.Anything).Return(errors.New("upsert failed"))

	err := suite.evaluationService.Apply(ctx, msg)
	suite.ErrorContains(err, "upsert failed")
}
