package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/abhayg44/RFP-System/internal/core/domain"
	"github.com/abhayg44/RFP-System/mocks"
)

type ProcurementHTTPHandlerSuite struct {
	suite.Suite
	publisher *mocks.QueuePublisher
	storage   *mocks.IngestionStorage
	handler   *ProcurementHTTPHandler
	echo      *echo.Echo
}

func TestProcurementHTTPHandler(t *testing.T) {
	suite.Run(t, new(ProcurementHTTPHandlerSuite))
}

func (suite *ProcurementHTTPHandlerSuite) SetupTest() {
	suite.publisher = &mocks.QueuePublisher{}
	suite.storage = &mocks.IngestionStorage{}
	suite.handler = NewProcurementHTTPHandler(suite.publisher, suite.storage)
	suite.echo = echo.New()
}

func (suite *ProcurementHTTPHandlerSuite) TearDownTest() {
	suite.publisher.AssertExpectations(suite.T())
	suite.storage.AssertExpectations(suite.T())
}

func (suite *ProcurementHTTPHandlerSuite) request(method, target, body string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, suite.echo.NewContext(req, rec)
}

func (suite *ProcurementHTTPHandlerSuite) TestCreateClientRequest_SingleObject() {
	rec, c := suite.request(http.MethodPost, "/api/v1/client/requests",
		`{"text":"Need 50 laptops","email":"c@x.com","vendorEmail":"v@x.com"}`)

	suite.publisher.EXPECT().Publish(mock.Anything, domain.AIRequestQueue, mock.MatchedBy(func(m interface{}) bool {
		msg, ok := m.(domain.AIRequestMessage)
		return ok && msg.Origin == domain.OriginClient &&
			msg.Text == "Need 50 laptops" &&
			msg.ClientEmail == "c@x.com" &&
			msg.VendorEmail == "v@x.com" &&
			msg.MessageID != ""
	})).Return(nil)

	err := suite.handler.CreateClientRequest()(c)

	suite.NoError(err)
	suite.Equal(http.StatusCreated, rec.Code)
}

func (suite *ProcurementHTTPHandlerSuite) TestCreateClientRequest_ArrayPublishesEach() {
	rec, c := suite.request(http.MethodPost, "/api/v1/client/requests",
		`[{"text":"first","client_email":"a@x.com"},{"text":"second","client_email":"b@x.com"}]`)

	suite.publisher.EXPECT().Publish(mock.Anything, domain.AIRequestQueue, mock.Anything).Return(nil).Twice()

	err := suite.handler.CreateClientRequest()(c)

	suite.NoError(err)
	suite.Equal(http.StatusCreated, rec.Code)
}

func (suite *ProcurementHTTPHandlerSuite) TestCreateClientRequest_InvalidBody() {
	rec, c := suite.request(http.MethodPost, "/api/v1/client/requests", `not json`)

	err := suite.handler.CreateClientRequest()(c)

	suite.NoError(err)
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProcurementHTTPHandlerSuite) TestCreateVendorProposal_CarriesIdentifiers() {
	rec, c := suite.request(http.MethodPost, "/api/v1/vendor/proposals",
		`{"text":"We offer $5/unit","vendor_email":"v@x.com","rfp_id":"507f1f77bcf86cd799439011","vendor_id":"507f1f77bcf86cd799439012"}`)

	suite.publisher.EXPECT().Publish(mock.Anything, domain.AIRequestQueue, mock.MatchedBy(func(m interface{}) bool {
		msg, ok := m.(domain.AIRequestMessage)
		return ok && msg.Origin == domain.OriginVendor &&
			msg.RFPID == "507f1f77bcf86cd799439011" &&
			msg.VendorID == "507f1f77bcf86cd799439012"
	})).Return(nil)

	err := suite.handler.CreateVendorProposal()(c)

	suite.NoError(err)
	suite.Equal(http.StatusCreated, rec.Code)
}

func (suite *ProcurementHTTPHandlerSuite) TestCreateVendorProposal_PublishFailure() {
	rec, c := suite.request(http.MethodPost, "/api/v1/vendor/proposals", `{"text":"offer"}`)

	suite.publisher.EXPECT().Publish(mock.Anything, domain.AIRequestQueue, mock.Anything).Return(errors.New("broker down"))

	err := suite.handler.CreateVendorProposal()(c)

	suite.NoError(err)
	suite.Equal(http.StatusInternalServerError, rec.Code)
}

func (suite *ProcurementHTTPHandlerSuite) TestTriggerEvaluation_PublishesSnapshot() {
	rec, c := suite.request(http.MethodPost, "/api/v1/rfps/507f1f77bcf86cd799439011/evaluate", "")
	c.SetParamNames("id")
	c.SetParamValues("507f1f77bcf86cd799439011")

	proposals := []domain.Proposal{
		{
			ID:          "aaaaaaaaaaaaaaaaaaaaaaaa",
			RFPID:       "507f1f77bcf86cd799439011",
			VendorID:    "507f1f77bcf86cd799439012",
			VendorEmail: "v@x.com",
			ClientEmail: "c@x.com",
			ReceivedAt:  time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		},
	}

	suite.storage.EXPECT().ListProposalsByRFP(mock.Anything, "507f1f77bcf86cd799439011").Return(proposals, nil)
	suite.publisher.EXPECT().Publish(mock.Anything, domain.ProposalsEvaluationQueue, mock.MatchedBy(func(m interface{}) bool {
		msg, ok := m.(domain.EvaluationRequestMessage)
		return ok && msg.RFPID == "507f1f77bcf86cd799439011" &&
			msg.Trigger == "manual" &&
			msg.ClientEmail == "c@x.com" &&
			len(msg.Proposals) == 1 &&
			msg.Proposals[0].ReceivedAt == "2026-08-30T10:00:00Z"
	})).Return(nil)

	err := suite.handler.TriggerEvaluation()(c)

	suite.NoError(err)
	suite.Equal(http.StatusAccepted, rec.Code)
	suite.Contains(rec.Body.String(), `"proposals_count":1`)
}

func (suite *ProcurementHTTPHandlerSuite) TestTriggerEvaluation_InvalidID() {
	rec, c := suite.request(http.MethodPost, "/api/v1/rfps/nope/evaluate", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	err := suite.handler.TriggerEvaluation()(c)

	suite.NoError(err)
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.storage.AssertNotCalled(suite.T(), "ListProposalsByRFP", mock.Anything, mock.Anything)
}

func (suite *ProcurementHTTPHandlerSuite) TestTriggerEvaluation_NoProposals() {
	rec, c := suite.request(http.MethodPost, "/api/v1/rfps/507f1f77bcf86cd799439011/evaluate", "")
	c.SetParamNames("id")
	c.SetParamValues("507f1f77bcf86cd799439011")

	suite.storage.EXPECT().ListProposalsByRFP(mock.Anything, "507f1f77bcf86cd799439011").Return(nil, nil)

	err := suite.handler.TriggerEvaluation()(c)

	suite.NoError(err)
	suite.Equal(http.StatusNotFound, rec.Code)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything, mock.Anything)
}
