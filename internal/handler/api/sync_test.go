//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"checkin-core/internal/domain/service"
	"checkin-core/internal/handler/api"
	resdto "checkin-core/internal/handler/dto/response"
	"checkin-core/internal/pkg/errs"
	"checkin-core/internal/usecase/offline"
	"checkin-core/internal/usecase/queries"
	"checkin-core/internal/usecase/shared"
	"checkin-core/tests/common/builder"
	"checkin-core/tests/common/httptest"
	offlinemock "checkin-core/tests/mock/offline"
	queriesmock "checkin-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SyncHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockFlusher *offlinemock.MockFlusher
	mockQueries *queriesmock.MockBoardQueries
}

func (s *SyncHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockFlusher = offlinemock.NewMockFlusher(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBoardQueries(s.mockCtrl)

	h := api.NewSyncHandler(s.mockFlusher, s.mockQueries)
	s.router.GET("/sync/status", fakeAuth, h.Status)
	s.router.POST("/sync/flush", fakeAuth, h.Flush)
	s.router.GET("/notices", fakeAuth, h.Notices)
}

func (s *SyncHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSyncHandlerSuite(t *testing.T) {
	suite.Run(t, new(SyncHandlerTestSuite))
}

func (s *SyncHandlerTestSuite) TestStatus() {
	placeholder := builder.NewRecordBuilder().Pending().BuildDomain()
	s.mockQueries.EXPECT().SyncStatus(gomock.Any()).Return(queries.SyncStatus{
		Online:     false,
		QueueDepth: 1,
		Pending: []shared.QueueEntry{{
			QueueID: placeholder.QueueID, Resource: service.ResourceShowers, Payload: placeholder,
			CreatedAt: builder.BaseTime, Attempts: 2, LastError: "connection refused",
		}},
		LastSynced: map[service.Resource]time.Time{
			service.ResourceShowers: builder.BaseTime,
			service.ResourceLaundry: {},
		},
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sync/status", nil, "bearer-token")

	var body resdto.SyncStatusResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.False(body.Online)
	s.Equal(1, body.QueueDepth)
	s.Require().Len(body.Pending, 1)
	s.Equal(placeholder.ID, body.Pending[0].RecordID)
	s.Equal(2, body.Pending[0].Attempts)
	s.Require().NotNil(body.LastSynced["showers"])
	s.True(builder.BaseTime.Equal(*body.LastSynced["showers"]))
	s.Nil(body.LastSynced["laundry"])
}

func (s *SyncHandlerTestSuite) TestFlush() {
	s.Run("drained", func() {
		s.mockFlusher.EXPECT().Flush(gomock.Any()).Return(offline.FlushResult{Synced: 2, Rejected: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sync/flush", nil, "bearer-token")

		var body resdto.FlushResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.FlushResponse{Synced: 2, Rejected: 1}, body)
	})

	s.Run("store still offline", func() {
		s.mockFlusher.EXPECT().Flush(gomock.Any()).
			Return(offline.FlushResult{Remaining: 3}, errs.Mark(errs.New("dial"), errs.ErrRemoteUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sync/flush", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Store unavailable")
	})
}

func (s *SyncHandlerTestSuite) TestNotices() {
	s.mockQueries.EXPECT().Notices(gomock.Any(), 5).Return([]queries.NoticeView{
		{Level: "warning", Message: "Changes were reverted: status was not saved", Actor: "staff-1", At: builder.BaseTime},
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notices?limit=5", nil, "bearer-token")

	var body []resdto.NoticeResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal("warning", body[0].Level)
	s.Equal("staff-1", body[0].Actor)
}
