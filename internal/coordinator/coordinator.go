// Package coordinator implements the booking state machine.
//
// Bookings move between confirmed, waitlisted, confirmable and canceled.
// Every mutating operation runs under a single blocking mutex spanning the
// read-check-write of both the conference record and the booking record, so
// concurrent requests can never lose a slot update or double-book a seat.
// Promotion is single-candidate: a cancellation that frees a seat promotes
// exactly the waitlist head to confirmable and arms a demotion timer; if the
// promoted user does not confirm inside the window, the timer returns the
// booking to the waitlist tail.
package coordinator

import (
	"context"
	"errors"
	"sync"
	"time"

	"confbook/internal/inventory"
	"confbook/internal/ledger"
	"confbook/pkg/config"
	apperrors "confbook/pkg/errors"
	"confbook/pkg/events"
	"confbook/pkg/logger"
	"confbook/pkg/model"
)

type Coordinator struct {
	store    *inventory.Store
	bookings *ledger.Ledger

	scheduler Scheduler
	window    time.Duration
	publisher events.Publisher
	log       *logger.Logger

	// mu serializes every mutating operation end to end, including timer
	// callbacks.
	mu      sync.Mutex
	pending map[string]Timer // booking id -> armed demotion timer
}

func NewCoordinator(
	store *inventory.Store,
	bookings *ledger.Ledger,
	scheduler Scheduler,
	publisher events.Publisher,
	cfg *config.Config,
) *Coordinator {
	return &Coordinator{
		store:     store,
		bookings:  bookings,
		scheduler: scheduler,
		window:    cfg.ConfirmationWindow,
		publisher: publisher,
		log:       cfg.Log,
		pending:   make(map[string]Timer),
	}
}

type BookResult struct {
	BookingID string              `json:"booking_id"`
	Status    model.BookingStatus `json:"status"`
}

type CancelResult struct {
	BookingID         string `json:"booking_id"`
	PromotedBookingID string `json:"promoted_booking_id,omitempty"`
}

// Book admits the user to the conference if a seat is free, otherwise
// appends a waitlisted booking at the queue tail.
func (c *Coordinator) Book(ctx context.Context, conferenceID, userID string) (*BookResult, error) {
	c.mu.Lock()
	res, evs, err := c.bookLocked(conferenceID, userID)
	c.mu.Unlock()

	c.emit(ctx, evs)
	return res, err
}

func (c *Coordinator) bookLocked(conferenceID, userID string) (*BookResult, []events.Event, error) {
	conf, err := c.store.ConferenceSnapshot(conferenceID)
	if err != nil {
		return nil, nil, apperrors.NotFoundWithID("Conference", conferenceID)
	}
	if _, err := c.store.User(userID); err != nil {
		return nil, nil, apperrors.NotFoundWithID("User", userID)
	}

	for _, existing := range c.bookings.ConfirmedByUser(userID) {
		if existing.ConferenceID == conferenceID {
			return nil, nil, apperrors.AlreadyBooked(existing.ID)
		}
		other, err := c.store.ConferenceSnapshot(existing.ConferenceID)
		if err != nil {
			return nil, nil, apperrors.Internal("booking references unknown conference", err)
		}
		if conf.Overlaps(other) {
			return nil, nil, apperrors.OverlappingBooking(other.Name)
		}
	}

	if conf.AvailableSlots > 0 {
		if err := c.store.AdjustSlots(conferenceID, -1); err != nil {
			return nil, nil, apperrors.Internal("slot decrement failed", err)
		}
		booking, err := c.bookings.Create(conferenceID, userID, model.StatusConfirmed)
		if err != nil {
			return nil, nil, apperrors.Internal("booking creation failed", err)
		}

		c.log.Info("booking confirmed",
			"booking_id", booking.ID,
			"conference", conferenceID,
			"user_id", userID,
		)
		ev := events.NewEvent(events.BookingConfirmed, booking.ID, conferenceID, userID)
		return &BookResult{BookingID: booking.ID, Status: model.StatusConfirmed}, []events.Event{ev}, nil
	}

	booking, err := c.bookings.Create(conferenceID, userID, model.StatusWaitlisted)
	if err != nil {
		return nil, nil, apperrors.Internal("booking creation failed", err)
	}
	entry := model.WaitlistEntry{BookingID: booking.ID, UserID: userID, EnqueuedAt: time.Now().UTC()}
	if err := c.store.EnqueueWaitlist(conferenceID, entry); err != nil {
		return nil, nil, apperrors.Internal("waitlist append failed", err)
	}

	c.log.Info("booking waitlisted",
		"booking_id", booking.ID,
		"conference", conferenceID,
		"user_id", userID,
	)
	ev := events.NewEvent(events.BookingWaitlisted, booking.ID, conferenceID, userID)
	return &BookResult{BookingID: booking.ID, Status: model.StatusWaitlisted}, []events.Event{ev}, nil
}

// Cancel marks the booking canceled. A cancellation that frees a confirmed
// seat returns the slot to the pool and promotes the waitlist head, if any,
// to confirmable with a demotion timer armed.
func (c *Coordinator) Cancel(ctx context.Context, bookingID string) (*CancelResult, error) {
	c.mu.Lock()
	res, evs, err := c.cancelLocked(bookingID)
	c.mu.Unlock()

	c.emit(ctx, evs)
	return res, err
}

func (c *Coordinator) cancelLocked(bookingID string) (*CancelResult, []events.Event, error) {
	booking, err := c.bookings.Get(bookingID)
	if err != nil {
		return nil, nil, apperrors.NotFoundWithID("Booking", bookingID)
	}
	if booking.Status == model.StatusCanceled {
		return nil, nil, apperrors.AlreadyCanceled(bookingID)
	}

	previous := booking.Status
	if err := c.bookings.SetStatus(bookingID, model.StatusCanceled); err != nil {
		return nil, nil, apperrors.Internal("status transition failed", err)
	}

	evs := []events.Event{events.NewEvent(events.BookingCanceled, bookingID, booking.ConferenceID, booking.UserID)}
	seatFreed := false

	switch previous {
	case model.StatusConfirmed:
		if err := c.store.AdjustSlots(booking.ConferenceID, 1); err != nil {
			return nil, nil, apperrors.Internal("slot increment failed", err)
		}
		seatFreed = true
	case model.StatusWaitlisted:
		if _, err := c.store.RemoveWaitlistEntry(booking.ConferenceID, bookingID); err != nil {
			return nil, nil, apperrors.Internal("waitlist removal failed", err)
		}
	case model.StatusConfirmable:
		c.stopTimerLocked(bookingID)
	}

	c.log.Info("booking canceled",
		"booking_id", bookingID,
		"conference", booking.ConferenceID,
		"previous_status", previous,
	)

	result := &CancelResult{BookingID: bookingID}
	if !seatFreed {
		return result, evs, nil
	}

	head, err := c.store.PopWaitlistHead(booking.ConferenceID)
	if err != nil {
		if errors.Is(err, inventory.ErrEmptyWaitlist) {
			return result, evs, nil
		}
		return nil, nil, apperrors.Internal("waitlist pop failed", err)
	}

	if err := c.bookings.SetStatus(head.BookingID, model.StatusConfirmable); err != nil {
		return nil, nil, apperrors.Internal("promotion transition failed", err)
	}
	c.armDemotionLocked(head.BookingID, booking.ConferenceID, head.UserID)

	c.log.Info("waitlist head promoted",
		"booking_id", head.BookingID,
		"conference", booking.ConferenceID,
		"user_id", head.UserID,
		"confirmation_window", c.window,
	)
	evs = append(evs, events.NewEvent(events.BookingPromoted, head.BookingID, booking.ConferenceID, head.UserID))
	result.PromotedBookingID = head.BookingID
	return result, evs, nil
}

// Confirm claims a seat for a confirmable booking. A booking that is absent
// or in any state other than confirmable gets the same NotEligible answer;
// the two are deliberately indistinguishable to callers.
func (c *Coordinator) Confirm(ctx context.Context, bookingID string) error {
	c.mu.Lock()
	evs, err := c.confirmLocked(bookingID)
	c.mu.Unlock()

	c.emit(ctx, evs)
	return err
}

func (c *Coordinator) confirmLocked(bookingID string) ([]events.Event, error) {
	booking, err := c.bookings.Get(bookingID)
	if err == nil && booking.Status == model.StatusConfirmed {
		return nil, apperrors.AlreadyConfirmed(bookingID)
	}
	if err != nil || booking.Status != model.StatusConfirmable {
		return nil, apperrors.NotEligible()
	}

	conf, err := c.store.ConferenceSnapshot(booking.ConferenceID)
	if err != nil {
		return nil, apperrors.Internal("booking references unknown conference", err)
	}
	if conf.AvailableSlots <= 0 {
		// Another admission consumed the freed seat first. The booking stays
		// confirmable until its timer demotes it.
		return nil, apperrors.NoSlotsAvailable(booking.ConferenceID)
	}

	if err := c.store.AdjustSlots(booking.ConferenceID, -1); err != nil {
		return nil, apperrors.Internal("slot decrement failed", err)
	}
	c.stopTimerLocked(bookingID)
	if err := c.bookings.SetStatus(bookingID, model.StatusConfirmed); err != nil {
		return nil, apperrors.Internal("status transition failed", err)
	}

	c.log.Info("waitlist booking confirmed",
		"booking_id", bookingID,
		"conference", booking.ConferenceID,
		"user_id", booking.UserID,
	)
	return []events.Event{events.NewEvent(events.BookingConfirmed, bookingID, booking.ConferenceID, booking.UserID)}, nil
}

// Status returns the booking's current status. Pure read; runs against the
// ledger's per-record snapshot without the coordinator lock.
func (c *Coordinator) Status(ctx context.Context, bookingID string) (model.BookingStatus, error) {
	booking, err := c.bookings.Get(bookingID)
	if err != nil {
		return "", apperrors.NotFoundWithID("Booking", bookingID)
	}
	return booking.Status, nil
}

func (c *Coordinator) armDemotionLocked(bookingID, conferenceID, userID string) {
	c.pending[bookingID] = c.scheduler.Schedule(c.window, func() {
		c.demote(bookingID, conferenceID, userID)
	})
}

func (c *Coordinator) stopTimerLocked(bookingID string) {
	if timer, ok := c.pending[bookingID]; ok {
		timer.Stop()
		delete(c.pending, bookingID)
	}
}

// demote is the timer callback. It re-acquires the coordinator mutex and
// no-ops unless the booking is still confirmable: confirmation or
// cancellation in the meantime wins, the fired timer is then stale.
func (c *Coordinator) demote(bookingID, conferenceID, userID string) {
	c.mu.Lock()
	evs := c.demoteLocked(bookingID, conferenceID, userID)
	c.mu.Unlock()

	c.emit(context.Background(), evs)
}

func (c *Coordinator) demoteLocked(bookingID, conferenceID, userID string) []events.Event {
	delete(c.pending, bookingID)

	booking, err := c.bookings.Get(bookingID)
	if err != nil || booking.Status != model.StatusConfirmable {
		return nil
	}

	if err := c.bookings.SetStatus(bookingID, model.StatusWaitlisted); err != nil {
		c.log.Error("demotion transition failed", "booking_id", bookingID, "error", err)
		return nil
	}
	entry := model.WaitlistEntry{BookingID: bookingID, UserID: userID, EnqueuedAt: time.Now().UTC()}
	if err := c.store.EnqueueWaitlist(conferenceID, entry); err != nil {
		c.log.Error("demotion re-enqueue failed", "booking_id", bookingID, "error", err)
		return nil
	}

	c.log.Info("confirmable booking demoted to waitlist tail",
		"booking_id", bookingID,
		"conference", conferenceID,
		"user_id", userID,
	)
	return []events.Event{events.NewEvent(events.BookingDemoted, bookingID, conferenceID, userID)}
}

// PendingDemotions reports how many demotion timers are armed.
func (c *Coordinator) PendingDemotions() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *Coordinator) emit(ctx context.Context, evs []events.Event) {
	for _, ev := range evs {
		if err := c.publisher.Publish(ctx, ev); err != nil {
			c.log.Warn("event publish failed",
				"event_id", ev.ID,
				"event_type", ev.Type,
				"booking_id", ev.BookingID,
				"error", err,
			)
		}
	}
}
