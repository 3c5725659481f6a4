//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/commands"
	"facility-booking/tests/common/builder"
	commandsmock "facility-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// stubUow hands every transaction the same Tx without any real database.
type stubUow struct {
	tx commands.Tx
}

func (u *stubUow) Within(ctx context.Context, fn func(ctx context.Context, tx commands.Tx) error) error {
	return fn(ctx, u.tx)
}

type ReserveTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	bookings  *commandsmock.MockBookingRepository
	resources *commandsmock.MockResourceRepository
	users     *commandsmock.MockUserRepository
	tx        *commandsmock.MockTx
	commands  commands.BookingCommands
	now       time.Time
}

func (s *ReserveTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bookings = commandsmock.NewMockBookingRepository(s.ctrl)
	s.resources = commandsmock.NewMockResourceRepository(s.ctrl)
	s.users = commandsmock.NewMockUserRepository(s.ctrl)
	s.tx = commandsmock.NewMockTx(s.ctrl)
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()
	s.tx.EXPECT().Resources().Return(s.resources).AnyTimes()
	s.tx.EXPECT().Users().Return(s.users).AnyTimes()

	s.now = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s.commands = commands.NewBookingCommands(&stubUow{tx: s.tx}, clock.NewMockClock(s.now))
}

func (s *ReserveTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReserveSuite(t *testing.T) {
	suite.Run(t, new(ReserveTestSuite))
}

func (s *ReserveTestSuite) expectAdmissionChecks(existing []*booking.Booking) {
	s.bookings.EXPECT().AcquireSlotLock(gomock.Any(), booking.KindRoom, int64(1), gomock.Any()).Return(nil)
	s.users.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
	s.resources.EXPECT().Exists(gomock.Any(), booking.KindRoom, int64(1)).Return(true, nil)
	s.bookings.EXPECT().FindForSlot(gomock.Any(), booking.KindRoom, int64(1), gomock.Any()).Return(existing, nil)
}

func (s *ReserveTestSuite) TestReserveSuccess() {
	input := builder.NewBookingBuilder().BuildReserveInput()

	s.expectAdmissionChecks(nil)
	s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), s.now).Return(int64(42), nil)

	result, err := s.commands.Reserve(context.Background(), booking.KindRoom, input)
	s.Require().NoError(err)
	s.Equal(int64(42), result.BookingID)
	s.Equal("09:00:00", result.StartTime)
	s.Equal(booking.StatusPending, result.Status)
}

func (s *ReserveTestSuite) TestReserveAdjacentSlotAdmitted() {
	input := builder.NewBookingBuilder().WithStartTime("11:00").WithHours(2).BuildReserveInput()
	existing := builder.NewBookingBuilder().WithStartTime("09:00").WithHours(2).BuildExisting()

	s.expectAdmissionChecks([]*booking.Booking{existing})
	s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), s.now).Return(int64(7), nil)

	result, err := s.commands.Reserve(context.Background(), booking.KindRoom, input)
	s.Require().NoError(err)
	s.Equal(int64(7), result.BookingID)
}

func (s *ReserveTestSuite) TestReserveConflictRejected() {
	input := builder.NewBookingBuilder().WithStartTime("10:00").WithHours(2).BuildReserveInput()
	existing := builder.NewBookingBuilder().WithStartTime("09:00").WithHours(2).BuildExisting()

	// No Create expectation: a conflicting candidate must never reach the insert.
	s.expectAdmissionChecks([]*booking.Booking{existing})

	result, err := s.commands.Reserve(context.Background(), booking.KindRoom, input)
	s.Require().ErrorIs(err, errs.ErrBookingConflict)
	s.Nil(result)
}

func (s *ReserveTestSuite) TestReserveCancelledSlotReusable() {
	input := builder.NewBookingBuilder().WithStartTime("09:00").WithHours(2).BuildReserveInput()
	cancelled := builder.NewBookingBuilder().WithStartTime("09:00").WithHours(2).
		WithStatus(booking.StatusCancelled).BuildExisting()

	s.expectAdmissionChecks([]*booking.Booking{cancelled})
	s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), s.now).Return(int64(8), nil)

	_, err := s.commands.Reserve(context.Background(), booking.KindRoom, input)
	s.Require().NoError(err)
}

func (s *ReserveTestSuite) TestReserveUnknownUser() {
	input := builder.NewBookingBuilder().BuildReserveInput()

	s.bookings.EXPECT().AcquireSlotLock(gomock.Any(), booking.KindRoom, int64(1), gomock.Any()).Return(nil)
	s.users.EXPECT().Exists(gomock.Any(), int64(1)).Return(false, nil)

	_, err := s.commands.Reserve(context.Background(), booking.KindRoom, input)
	s.Require().ErrorIs(err, errs.ErrUserNotFound)
}

func (s *ReserveTestSuite) TestReserveUnknownResource() {
	input := builder.NewBookingBuilder().BuildReserveInput()

	s.bookings.EXPECT().AcquireSlotLock(gomock.Any(), booking.KindRoom, int64(1), gomock.Any()).Return(nil)
	s.users.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
	s.resources.EXPECT().Exists(gomock.Any(), booking.KindRoom, int64(1)).Return(false, nil)

	_, err := s.commands.Reserve(context.Background(), booking.KindRoom, input)
	s.Require().ErrorIs(err, errs.ErrResourceNotFound)
}

// Validation failures must short-circuit before any repository access; the
// mocks have no expectations, so an unexpected call fails the test.
func (s *ReserveTestSuite) TestReserveValidation() {
	tests := []struct {
		name   string
		kind   booking.Kind
		mutate func(*builder.BookingBuilder)
		errIs  error
	}{
		{
			name:   "missing user",
			kind:   booking.KindRoom,
			mutate: func(b *builder.BookingBuilder) { b.UserID = 0 },
			errIs:  booking.ErrMissingRequester,
		},
		{
			name:   "missing resource",
			kind:   booking.KindRoom,
			mutate: func(b *builder.BookingBuilder) { b.ResourceID = 0 },
			errIs:  booking.ErrMissingResource,
		},
		{
			name:   "missing department",
			kind:   booking.KindRoom,
			mutate: func(b *builder.BookingBuilder) { b.Department = " " },
			errIs:  booking.ErrMissingDepartment,
		},
		{
			name:   "missing date",
			kind:   booking.KindRoom,
			mutate: func(b *builder.BookingBuilder) { b.BookingDate = "" },
			errIs:  booking.ErrInvalidDate,
		},
		{
			name:   "malformed date",
			kind:   booking.KindRoom,
			mutate: func(b *builder.BookingBuilder) { b.BookingDate = "15-09-2026" },
			errIs:  booking.ErrInvalidDate,
		},
		{
			name:   "missing start time",
			kind:   booking.KindRoom,
			mutate: func(b *builder.BookingBuilder) { b.StartTime = "" },
			errIs:  booking.ErrInvalidClock,
		},
		{
			name:   "malformed start time",
			kind:   booking.KindRoom,
			mutate: func(b *builder.BookingBuilder) { b.StartTime = "quarter past nine" },
			errIs:  booking.ErrInvalidClock,
		},
		{
			name:   "zero hours",
			kind:   booking.KindRoom,
			mutate: func(b *builder.BookingBuilder) { b.Hours = 0 },
			errIs:  booking.ErrInvalidHours,
		},
		{
			name:   "fractional hours",
			kind:   booking.KindRoom,
			mutate: func(b *builder.BookingBuilder) { b.Hours = 2.5 },
			errIs:  booking.ErrInvalidHours,
		},
		{
			name:   "nine hours",
			kind:   booking.KindRoom,
			mutate: func(b *builder.BookingBuilder) { b.Hours = 9 },
			errIs:  booking.ErrInvalidHours,
		},
		{
			name:   "vehicle without destination",
			kind:   booking.KindVehicle,
			mutate: func(b *builder.BookingBuilder) { b.Kind = booking.KindVehicle; b.Destination = nil },
			errIs:  booking.ErrMissingDestination,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			input := builder.NewBookingBuilder().With(tt.mutate).BuildReserveInput()

			result, err := s.commands.Reserve(context.Background(), tt.kind, input)
			s.Require().ErrorIs(err, tt.errIs)
			s.Require().ErrorIs(err, errs.ErrValidation)
			s.Nil(result)
		})
	}
}

func (s *ReserveTestSuite) TestSetStatus() {
	s.Run("success", func() {
		s.bookings.EXPECT().
			UpdateStatus(gomock.Any(), booking.KindRoom, int64(5), booking.StatusApproved, s.now).
			Return(nil)

		err := s.commands.SetStatus(context.Background(), booking.KindRoom, 5, "Approved")
		s.Require().NoError(err)
	})

	s.Run("missing booking", func() {
		s.bookings.EXPECT().
			UpdateStatus(gomock.Any(), booking.KindRoom, int64(404), booking.StatusCancelled, s.now).
			Return(infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		err := s.commands.SetStatus(context.Background(), booking.KindRoom, 404, "Cancelled")
		s.Require().ErrorIs(err, errs.ErrBookingNotFound)
	})

	s.Run("reviving a booking into a rebooked slot conflicts", func() {
		s.bookings.EXPECT().
			UpdateStatus(gomock.Any(), booking.KindRoom, int64(5), booking.StatusApproved, s.now).
			Return(infra.WrapRepoErr("booking status change overlaps an existing reservation", nil, infra.KindConflict))

		err := s.commands.SetStatus(context.Background(), booking.KindRoom, 5, "Approved")
		s.Require().ErrorIs(err, errs.ErrBookingConflict)
	})

	s.Run("unknown status", func() {
		err := s.commands.SetStatus(context.Background(), booking.KindRoom, 5, "Done")
		s.Require().ErrorIs(err, errs.ErrValidation)
	})

	s.Run("missing booking id", func() {
		err := s.commands.SetStatus(context.Background(), booking.KindRoom, 0, "Approved")
		s.Require().ErrorIs(err, errs.ErrValidation)
	})
}

// memoryBookingRepo mimics the store's slot serialization with one mutex per
// slot key, matching the advisory lock's scope.
type memoryBookingRepo struct {
	mu       sync.Mutex
	slotLock sync.Mutex
	nextID   int64
	rows     []*booking.Booking
}

func (r *memoryBookingRepo) AcquireSlotLock(context.Context, booking.Kind, int64, time.Time) error {
	r.slotLock.Lock()
	return nil
}

func (r *memoryBookingRepo) releaseSlotLock() {
	r.slotLock.Unlock()
}

func (r *memoryBookingRepo) FindForSlot(context.Context, booking.Kind, int64, time.Time) ([]*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := make([]*booking.Booking, len(r.rows))
	copy(rows, r.rows)
	return rows, nil
}

func (r *memoryBookingRepo) Create(_ context.Context, b *booking.Booking, _ time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.rows = append(r.rows, booking.ReconstructBooking(
		r.nextID, b.Kind(), b.ResourceID(), b.UserID(), b.Department(),
		b.Date(), b.Interval(), b.Destination(), b.Status(), time.Now(), time.Now(),
	))
	return r.nextID, nil
}

func (r *memoryBookingRepo) UpdateStatus(context.Context, booking.Kind, int64, booking.Status, time.Time) error {
	return nil
}

type memoryTx struct {
	bookings  *memoryBookingRepo
	resources commands.ResourceRepository
	users     commands.UserRepository
}

func (t *memoryTx) Bookings() commands.BookingRepository   { return t.bookings }
func (t *memoryTx) Resources() commands.ResourceRepository { return t.resources }
func (t *memoryTx) Users() commands.UserRepository         { return t.users }

// memoryUow releases the slot lock when the transaction body returns, the way
// an advisory transaction lock falls away on commit or rollback.
type memoryUow struct {
	tx *memoryTx
}

func (u *memoryUow) Within(ctx context.Context, fn func(ctx context.Context, tx commands.Tx) error) error {
	err := fn(ctx, u.tx)
	u.tx.bookings.releaseSlotLock()
	return err
}

func TestConcurrentAdmissionSingleWinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resources := commandsmock.NewMockResourceRepository(ctrl)
	resources.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	users := commandsmock.NewMockUserRepository(ctrl)
	users.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()

	repo := &memoryBookingRepo{}
	uow := &memoryUow{tx: &memoryTx{bookings: repo, resources: resources, users: users}}
	cmds := commands.NewBookingCommands(uow, clock.NewRealClock())

	const workers = 16
	input := builder.NewBookingBuilder().BuildReserveInput()

	var wg sync.WaitGroup
	results := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, results[n] = cmds.Reserve(context.Background(), booking.KindRoom, input)
		}(i)
	}
	wg.Wait()

	admitted := 0
	for _, err := range results {
		if err == nil {
			admitted++
			continue
		}
		require.ErrorIs(t, err, errs.ErrBookingConflict)
	}
	assert.Equal(t, 1, admitted, "exactly one concurrent admission may win the slot")
	assert.Len(t, repo.rows, 1)
}
