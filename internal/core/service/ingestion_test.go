package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/abhayg44/RFP-System/internal/core/domain"
	"github.com/abhayg44/RFP-System/mocks"
)

type IngestionServiceSuite struct {
	suite.Suite
	storage          *mocks.IngestionStorage
	notifier         *mocks.NotifierClient
	ingestionService *IngestionService
}

func TestIngestionService(t *testing.T) {
	suite.Run(t, new(IngestionServiceSuite))
}

func (suite *IngestionServiceSuite) SetupTest() {
	suite.storage = &mocks.IngestionStorage{}
	suite.notifier = &mocks.NotifierClient{}
	suite.ingestionService = NewIngestionService(suite.storage, suite.notifier)
}

func (suite *IngestionServiceSuite) TearDownTest() {
	suite.storage.AssertExpectations(suite.T())
	suite.notifier.AssertExpectations(suite.T())
}

func vendorMessage() *domain.InboundMessage {
	return &domain.InboundMessage{
		Origin:      domain.OriginVendor,
		MessageID:   "m1",
		Text:        "We offer 100 units at $5 each",
		ClientEmail: "c@x.com",
		VendorEmail: "v@x.com",
		RFPID:       "507f1f77bcf86cd799439011",
		VendorID:    "507f1f77bcf86cd799439012",
	}
}

func (suite *IngestionServiceSuite) TestVendorMessage_PersistsAndNotifies() {
	ctx := context.Background()
	msg := vendorMessage()

	suite.storage.EXPECT().FindProposalByMessageID(ctx, "m1").Return(nil, nil)
	suite.storage.EXPECT().InsertProposal(ctx, mock.MatchedBy(func(p *domain.Proposal) bool {
		return p.MessageID == "m1" && p.RFPID == "507f1f77bcf86cd799439011" && p.VendorID == "507f1f77bcf86cd799439012"
	})).Return(nil)
	suite.notifier.EXPECT().Send(ctx, "c@x.com", "New Proposal Received", "We offer 100 units at $5 each").Return(nil)

	err := suite.ingestionService.Process(ctx, msg)
	suite.NoError(err)
}

func (suite *IngestionServiceSuite) TestVendorMessage_RedeliverySkipsPersistButNotifies() {
	ctx := context.Background()
	msg := vendorMessage()

	suite.storage.EXPECT().FindProposalByMessageID(ctx, "m1").Return(&domain.Proposal{ID: "aaaaaaaaaaaaaaaaaaaaaaaa", MessageID: "m1"}, nil)
	suite.notifier.EXPECT().Send(ctx, "c@x.com", mock.Anything, mock.Anything).Return(nil)

	err := suite.ingestionService.Process(ctx, msg)

	suite.NoError(err)
	suite.storage.AssertNotCalled(suite.T(), "InsertProposal", mock.Anything, mock.Anything)
}

func (suite *IngestionServiceSuite) TestVendorMessage_DuplicateKeyRaceIsBenign() {
	ctx := context.Background()
	msg := vendorMessage()

	suite.storage.EXPECT().FindProposalByMessageID(ctx, "m1").Return(nil, nil)
	suite.storage.EXPECT().InsertProposal(ctx, mock.Anything).Return(domain.ErrDuplicateMessage)
	suite.notifier.EXPECT().Send(ctx, "c@x.com", mock.Anything, mock.Anything).Return(nil)

	err := suite.ingestionService.Process(ctx, msg)
	suite.NoError(err)
}

func (suite *IngestionServiceSuite) TestVendorMessage_InvalidIdentifierStillNotifies() {
	ctx := context.Background()
	msg := vendorMessage()
	msg.RFPID = "bad-id"

	suite.storage.EXPECT().FindProposalByMessageID(ctx, "m1").Return(nil, nil)
	suite.notifier.EXPECT().Send(ctx, "c@x.com", mock.Anything, mock.Anything).Return(nil)

	err := suite.ingestionService.Process(ctx, msg)

	suite.NoError(err)
	suite.storage.AssertNotCalled(suite.T(), "InsertProposal", mock.Anything, mock.Anything)
}

func (suite *IngestionServiceSuite) TestVendorMessage_NoMessageIDSkipsDedupe() {
	ctx := context.Background()
	msg := vendorMessage()
	msg.MessageID = ""

	suite.storage.EXPECT().InsertProposal(ctx, mock.MatchedBy(func(p *domain.Proposal) bool {
		return p.MessageID == ""
	})).Return(nil)
	suite.notifier.EXPECT().Send(ctx, "c@x.com", mock.Anything, mock.Anything).Return(nil)

	err := suite.ingestionService.Process(ctx, msg)

	suite.NoError(err)
	suite.storage.AssertNotCalled(suite.T(), "FindProposalByMessageID", mock.Anything, mock.Anything)
}

func (suite *IngestionServiceSuite) TestVendorMessage_PersistFailureStillNotifies() {
	ctx := context.Background()
	msg := vendorMessage()

	suite.storage.EXPECT().FindProposalByMessageID(ctx, "m1").Return(nil, nil)
	suite.storage.EXPECT().InsertProposal(ctx, mock.Anything).Return(errors.New("store unavailable"))
	suite.notifier.EXPECT().Send(ctx, "c@x.com", mock.Anything, mock.Anything).Return(nil)

	err := suite.ingestionService.Process(ctx, msg)
	suite.NoError(err)
}

func (suite *IngestionServiceSuite) TestVendorMessage_NotificationFailureIsAbsorbed() {
	ctx := context.Background()
	msg := vendorMessage()

	suite.storage.EXPECT().FindProposalByMessageID(ctx, "m1").Return(nil, nil)
	suite.storage.EXPECT().InsertProposal(ctx, mock.Anything).Return(nil)
	suite.notifier.EXPECT().Send(ctx, "c@x.com", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	err := suite.ingestionService.Process(ctx, msg)
	suite.NoError(err)
}

func (suite *IngestionServiceSuite) TestVendorMessage_NotificationBodyFallbacks() {
	ctx := context.Background()
	msg := vendorMessage()
	msg.MessageForClient = "Dear client, a proposal arrived"

	suite.storage.EXPECT().FindProposalByMessageID(ctx, "m1").Return(nil, nil)
	suite.storage.EXPECT().InsertProposal(ctx, mock.Anything).Return(nil)
	suite.notifier.EXPECT().Send(ctx, "c@x.com", mock.Anything, "Dear client, a proposal arrived").Return(nil)

	err := suite.ingestionService.Process(ctx, msg)
	suite.NoError(err)
}

func (suite *IngestionServiceSuite) TestClientMessage_PersistsAndNotifiesVendor() {
	ctx := context.Background()
	msg := &domain.InboundMessage{
		Origin:      domain.OriginClient,
		MessageID:   "m2",
		Text:        "Need 50 laptops",
		Subject:     "Laptop RFP",
		ClientEmail: "c@x.com",
		VendorEmail: "v@x.com",
	}

	suite.storage.EXPECT().FindRFPByMessageID(ctx, "m2").Return(nil, nil)
	suite.storage.EXPECT().InsertRFP(ctx, mock.MatchedBy(func(r *domain.RFP) bool {
		return r.MessageID == "m2" && r.Title == "Laptop RFP"
	})).Return(nil)
	suite.notifier.EXPECT().Send(ctx, "v@x.com", "Laptop RFP", "Need 50 laptops").Return(nil)

	err := suite.ingestionService.Process(ctx, msg)
	suite.NoError(err)
}

func (suite *IngestionServiceSuite) TestClientMessage_RedeliverySkipsPersist() {
	ctx := context.Background()
	msg := &domain.InboundMessage{
		Origin:      domain.OriginClient,
		MessageID:   "m2",
		Text:        "Need 50 laptops",
		VendorEmail: "v@x.com",
	}

	suite.storage.EXPECT().FindRFPByMessageID(ctx, "m2").Return(&domain.RFP{ID: "bbbbbbbbbbbbbbbbbbbbbbbb", MessageID: "m2"}, nil)
	suite.notifier.EXPECT().Send(ctx, "v@x.com", mock.Anything, mock.Anything).Return(nil)

	err := suite.ingestionService.Process(ctx, msg)

	suite.NoError(err)
	suite.storage.AssertNotCalled(suite.T(), "InsertRFP", mock.Anything, mock.Anything)
}

func (suite *IngestionServiceSuite) TestUnknownOrigin_NothingPersistedOrNotified() {
	ctx := context.Background()
	msg := &domain.InboundMessage{Origin: "shipper"}

	err := suite.ingestionService.Process(ctx, msg)

	suite.ErrorIs(err, domain.ErrUnknownOrigin)
	suite.storage.AssertNotCalled(suite.T(), "InsertProposal", mock.Anything, mock.Anything)
	suite.storage.AssertNotCalled(suite.T(), "InsertRFP", mock.Anything, mock.Anything)
	suite.notifier.AssertNotCalled(suite.T(), "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *IngestionServiceSuite) TestDedupeLookupErrorFallsThroughToInsert() {
	ctx := context.Background()
	msg := vendorMessage()

	suite.storage.EXPECT().FindProposalByMessageID(ctx, "m1").Return(nil, errors.New("query timeout"))
	suite.storage.EXPECT().InsertProposal(ctx, mock.Anything).Return(nil)
	suite.notifier.EXPECT().Send(ctx, "c@x.com", mock.Anything, mock.Anything).Return(nil)

	err := suite.ingestionService.Process(ctx, msg)
	suite.NoError(err)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("a", "b"))
	assert.Equal(t, "b", firstNonEmpty("", "b"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}
