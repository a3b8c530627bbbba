//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"checkin-core/internal/domain/history"
	"checkin-core/internal/domain/service"
	"checkin-core/internal/handler/api"
	resdto "checkin-core/internal/handler/dto/response"
	"checkin-core/internal/pkg/errs"
	"checkin-core/internal/usecase/queries"
	"checkin-core/tests/common/builder"
	"checkin-core/tests/common/httptest"
	historymock "checkin-core/tests/mock/history"
	queriesmock "checkin-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HistoryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUndo    *historymock.MockUndoCommands
	mockQueries *queriesmock.MockBoardQueries
}

func (s *HistoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUndo = historymock.NewMockUndoCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBoardQueries(s.mockCtrl)

	h := api.NewHistoryHandler(s.mockUndo, s.mockQueries)
	s.router.GET("/history", fakeAuth, h.List)
	s.router.POST("/history/:id/undo", fakeAuth, h.Undo)
}

func (s *HistoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHistoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(HistoryHandlerTestSuite))
}

func (s *HistoryHandlerTestSuite) TestList() {
	entry := history.NewEntry(history.ActionShowerBooked, builder.BaseTime,
		history.Payload{RecordID: "rec-1", Resource: service.ResourceShowers}, "Shower booked for 08:00", "staff-1")

	s.Run("first page with next cursor", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), (*queries.Cursor)(nil), 10).
			Return([]history.Entry{entry}, &queries.Cursor{After: "next"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history?limit=10", nil, "bearer-token")

		var body resdto.HistoryListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(entry.ID, body.Items[0].ID)
		s.Equal("SHOWER_BOOKED", body.Items[0].Type)
		s.Equal("rec-1", body.Items[0].RecordID)
		s.Equal("next", body.NextCursor)
	})

	s.Run("cursor is forwarded", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), &queries.Cursor{After: "abc"}, 0).
			Return([]history.Entry{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history?after=abc", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: bad cursor", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(errs.New("decode"), errs.ErrInvalidInput)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history?after=zzz", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: bad limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history?limit=ten", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})
}

func (s *HistoryHandlerTestSuite) TestUndo() {
	s.Run("undone", func() {
		s.mockUndo.EXPECT().Undo(gomock.Any(), "h-1").Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/history/h-1/undo", nil, "bearer-token")

		var body resdto.UndoResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Undone)
	})

	s.Run("already gone is not an error", func() {
		s.mockUndo.EXPECT().Undo(gomock.Any(), "h-2").Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/history/h-2/undo", nil, "bearer-token")

		var body resdto.UndoResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Undone)
	})

	s.Run("store unreachable", func() {
		s.mockUndo.EXPECT().Undo(gomock.Any(), "h-3").Return(false, errs.ErrRemoteUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/history/h-3/undo", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Store unavailable")
	})

	s.Run("record changed since the action", func() {
		s.mockUndo.EXPECT().Undo(gomock.Any(), "h-4").Return(false, errs.Wrap(errs.ErrStaleAction, "record r-1 is cancelled")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/history/h-4/undo", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Record changed since this action")
	})
}
