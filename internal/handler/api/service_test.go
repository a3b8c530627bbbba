//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"checkin-core/internal/domain/service"
	"checkin-core/internal/domain/slot"
	"checkin-core/internal/handler/api"
	reqdto "checkin-core/internal/handler/dto/request"
	resdto "checkin-core/internal/handler/dto/response"
	"checkin-core/internal/handler/middleware"
	"checkin-core/internal/pkg/errs"
	"checkin-core/internal/pkg/jwt"
	"checkin-core/internal/usecase/commands"
	"checkin-core/internal/usecase/shared"
	"checkin-core/tests/common/builder"
	"checkin-core/tests/common/httptest"
	"checkin-core/tests/common/testutil"
	commandsmock "checkin-core/tests/mock/commands"
	queriesmock "checkin-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for RequireAuth: any bearer token is staff-1.
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	middleware.SetStaff(c, "staff-1", jwt.RoleVolunteer)
	c.Next()
}

type ServiceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockServiceCommands
	mockQueries  *queriesmock.MockBoardQueries
	handler      *api.ServiceHandler
}

func (s *ServiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockServiceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBoardQueries(s.mockCtrl)
	s.handler = api.NewServiceHandler(s.mockCommands, s.mockQueries, func() string { return builder.BaseDate })

	s.router.POST("/showers", fakeAuth, s.handler.BookShower)
	s.router.POST("/showers/waitlist", fakeAuth, s.handler.JoinWaitlist)
	s.router.POST("/laundry", fakeAuth, s.handler.BookLaundry)
	s.router.POST("/logs", fakeAuth, s.handler.LogService)
	s.router.GET("/records", fakeAuth, s.handler.ListRecords)
	s.router.GET("/slots/:type", fakeAuth, s.handler.ListSlots)
	s.router.PATCH("/records/:id/status", fakeAuth, s.handler.UpdateStatus)
	s.router.PATCH("/records/:id/slot", fakeAuth, s.handler.Reschedule)
	s.router.DELETE("/records/:id", fakeAuth, s.handler.CancelRecord)
}

func (s *ServiceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestServiceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ServiceHandlerTestSuite))
}

type testCaseService struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestBookShower
// ================================================================================

func (s *ServiceHandlerTestSuite) TestBookShower() {
	url := "/showers"
	reqBody := reqdto.BookShowerRequest{SubjectID: "subject-1", SlotKey: "08:00"}
	committed := builder.NewRecordBuilder().WithSubject("subject-1").BuildDomain()

	s.Run("success: 201 with Location for a committed booking", func() {
		s.mockCommands.EXPECT().BookShower(gomock.Any(), commands.BookSlotInput{SubjectID: "subject-1", SlotKey: "08:00"}).
			Return(commands.Result{Record: committed, HistoryID: "h-1"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreateRecordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(committed.ID, body.Record.ID)
		s.False(body.Queued)
		s.Equal("h-1", body.HistoryID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/records/" + committed.ID})
	})

	s.Run("success: 202 when the booking was queued offline", func() {
		placeholder := builder.NewRecordBuilder().Pending().BuildDomain()
		s.mockCommands.EXPECT().BookShower(gomock.Any(), gomock.Any()).
			Return(commands.Result{Record: placeholder, Queued: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreateRecordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &body)
		s.True(body.Queued)
		s.True(body.Record.PendingSync)
		s.Empty(rec.Header().Get("Location"))
	})

	s.Run("staff id reaches the command context", func() {
		s.mockCommands.EXPECT().BookShower(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ commands.BookSlotInput) (commands.Result, error) {
				s.Equal("staff-1", shared.ActorFrom(ctx))
				return commands.Result{Record: committed}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseService{
			{name: "missing subjectId", mutate: testutil.Field("subjectId", nil), expectCode: http.StatusBadRequest},
			{name: "missing slotKey", mutate: testutil.Field("slotKey", nil), expectCode: http.StatusBadRequest},
			{name: "slotKey not HH:MM", mutate: testutil.Field("slotKey", "8am"), expectCode: http.StatusBadRequest},
			{name: "date not YYYY-MM-DD", mutate: testutil.Field("date", "14/03/2026"), expectCode: http.StatusBadRequest},
			{name: "subjectId too long", mutate: testutil.Field("subjectId", strings.Repeat("a", 65)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps engine errors to proper statuses", func() {
		until := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "slot full (stale view)", commandsError: errs.Wrap(errs.ErrSlotFull, "shower 08:00"), expectedStatus: http.StatusConflict, expectedMsg: "Slot is full"},
			{name: "slot just filled (lost race)", commandsError: errs.SlotJustFilled("08:00"), expectedStatus: http.StatusConflict, expectedMsg: "This slot just filled up"},
			{name: "already booked", commandsError: errs.ErrAlreadyBooked, expectedStatus: http.StatusConflict, expectedMsg: "Already booked"},
			{
				name: "restriction active",
				commandsError: &errs.RestrictionError{
					SubjectID: "subject-1", DisplayName: "Sam", Service: "showers", Until: until, Reason: "conduct",
				},
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Sam is restricted from showers until Apr 1, 2026: conduct",
			},
			{name: "invalid input", commandsError: errs.Wrap(errs.ErrInvalidInput, "slot is required"), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid request"},
			{name: "store rejected", commandsError: errs.ErrRemoteRejected, expectedStatus: http.StatusBadGateway, expectedMsg: "Store rejected"},
			{name: "unexpected", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Failed to book shower"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().BookShower(gomock.Any(), gomock.Any()).
					Return(commands.Result{}, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestBookLaundry / TestLogService
// ================================================================================

func (s *ServiceHandlerTestSuite) TestBookLaundry() {
	url := "/laundry"
	reqBody := reqdto.BookLaundryRequest{SubjectID: "subject-2", Mode: "onsite", SlotKey: "09:00", BagNumber: " B-7 "}

	s.Run("success: passes trimmed input", func() {
		s.mockCommands.EXPECT().BookLaundry(gomock.Any(), commands.LaundryInput{
			SubjectID: "subject-2", Mode: service.LaundryOnsite, SlotKey: "09:00", BagNumber: "B-7",
		}).Return(commands.Result{Record: builder.NewRecordBuilder().Laundry(service.LaundryOnsite).BuildDomain()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: unknown mode", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("mode", "dropbox"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *ServiceHandlerTestSuite) TestLogService() {
	url := "/logs"
	reqBody := reqdto.LogServiceRequest{Type: "meal", SubjectID: "subject-3", Quantity: 2}

	s.Run("success", func() {
		s.mockCommands.EXPECT().LogService(gomock.Any(), commands.LogInput{
			Type: service.TypeMeal, SubjectID: "subject-3", Quantity: 2,
		}).Return(commands.Result{Record: builder.NewRecordBuilder().WithoutSlot().BuildDomain()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: validation", func() {
		for _, tc := range []testCaseService{
			{name: "shower is not loggable", mutate: testutil.Field("type", "shower"), expectCode: http.StatusBadRequest},
			{name: "quantity out of range", mutate: testutil.Field("quantity", 101), expectCode: http.StatusBadRequest},
		} {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestListRecords / TestListSlots
// ================================================================================

func (s *ServiceHandlerTestSuite) TestListRecords() {
	s.Run("defaults to today", func() {
		r := builder.NewRecordBuilder().BuildDomain()
		s.mockQueries.EXPECT().Records(gomock.Any(), builder.BaseDate, service.Type("")).
			Return([]service.Record{r}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/records", nil, "bearer-token")

		var body []resdto.RecordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(r.ID, body[0].ID)
	})

	s.Run("passes date and type", func() {
		s.mockQueries.EXPECT().Records(gomock.Any(), "2026-03-15", service.TypeLaundry).
			Return([]service.Record{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/records?date=2026-03-15&type=laundry", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: bad date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/records?date=tomorrow", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})
}

func (s *ServiceHandlerTestSuite) TestListSlots() {
	s.mockQueries.EXPECT().Slots(gomock.Any(), service.TypeShower, builder.BaseDate).
		Return([]slot.Occupancy{{Slot: "08:00", Count: 2, Capacity: 2}}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots/shower", nil, "bearer-token")

	var body []resdto.SlotResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal([]resdto.SlotResponse{{Slot: "08:00", Count: 2, Capacity: 2, Full: true}}, body)
}

// ================================================================================
// TestEdits
// ================================================================================

func (s *ServiceHandlerTestSuite) TestUpdateStatus() {
	r := builder.NewRecordBuilder().WithStatus(service.StatusDone).BuildDomain()
	url := "/records/" + r.ID + "/status"

	s.Run("success", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), r.ID, service.StatusDone).Return(r, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqdto.UpdateStatusRequest{Status: "done"}, "bearer-token")

		var body resdto.RecordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("done", body.Status)
	})

	s.Run("error mapping", func() {
		for _, tc := range []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "rolled back", err: errs.Mark(errs.ErrRemoteUnavailable, errs.ErrRolledBack), status: http.StatusBadGateway, msg: "Changes were reverted"},
			{name: "invalid transition", err: errs.ErrInvalidTransition, status: http.StatusUnprocessableEntity, msg: "Invalid status transition"},
			{name: "not found", err: errs.ErrNotFound, status: http.StatusNotFound, msg: "Not found"},
		} {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), r.ID, gomock.Any()).Return(service.Record{}, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqdto.UpdateStatusRequest{Status: "washer"}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}

func (s *ServiceHandlerTestSuite) TestRescheduleAndCancel() {
	r := builder.NewRecordBuilder().WithSlot("10:00").BuildDomain()

	s.Run("reschedule to a full slot", func() {
		s.mockCommands.EXPECT().RescheduleShower(gomock.Any(), r.ID, "10:00").
			Return(service.Record{}, errs.Wrap(errs.ErrSlotFull, "10:00")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/records/"+r.ID+"/slot",
			reqdto.RescheduleRequest{SlotKey: "10:00"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Slot is full")
	})

	s.Run("cancel", func() {
		cancelled := r.Clone()
		cancelled.Status = service.StatusCancelled
		s.mockCommands.EXPECT().CancelRecord(gomock.Any(), r.ID).Return(cancelled, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/records/"+r.ID, nil, "bearer-token")

		var body resdto.RecordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})
}
