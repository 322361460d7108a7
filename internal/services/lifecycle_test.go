package services

import (
	"testing"
	"time"
)

type stubWeekResetRunner struct {
	didReset bool
	calls    int
}

func (stub *stubWeekResetRunner) CheckAndResetWeek(now time.Time) (bool, error) {
	stub.calls++
	return stub.didReset, nil
}

type stubReminderRearm struct {
	rescheduleCalls int
	purgeCalls      int
}

func (stub *stubReminderRearm) RescheduleAll(now time.Time) (int, error) {
	stub.rescheduleCalls++
	return 2, nil
}

func (stub *stubReminderRearm) PurgeHandled(now time.Time) error {
	stub.purgeCalls++
	return nil
}

func TestLifecycleRunRearmsWhenNoReset(t *testing.T) {
	t.Parallel()

	streaks := &stubWeekResetRunner{}
	reminders := &stubReminderRearm{}
	service := NewLifecycleService(streaks, reminders)

	service.run(time.Now())
	if streaks.calls != 1 {
		t.Fatalf("CheckAndResetWeek calls = %d, want 1", streaks.calls)
	}
	if reminders.rescheduleCalls != 1 || reminders.purgeCalls != 1 {
		t.Fatalf("reminder calls = %d/%d, want 1/1", reminders.rescheduleCalls, reminders.purgeCalls)
	}
}

func TestLifecycleRunSkipsRearmAfterReset(t *testing.T) {
	t.Parallel()

	streaks := &stubWeekResetRunner{didReset: true}
	reminders := &stubReminderRearm{}
	service := NewLifecycleService(streaks, reminders)

	service.run(time.Now())
	if reminders.rescheduleCalls != 0 || reminders.purgeCalls != 0 {
		t.Fatalf("reminders touched after reset, calls = %d/%d", reminders.rescheduleCalls, reminders.purgeCalls)
	}
}
