package service_test

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"todolist/internal/core/domain"
	"todolist/internal/core/service"
	"todolist/internal/core/telemetry"
)

type NotifierSuite struct {
	suite.Suite
	Notifier *service.Notifier
}

func (s *NotifierSuite) SetupTest() {
	s.Notifier = service.NewNotifier(time.Minute, zerolog.Nop(), telemetry.NewNoOpProbe())
}

func (s *NotifierSuite) TearDownTest() {
	s.Notifier.Close()
}

func TestNotifierSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(NotifierSuite))
}

func (s *NotifierSuite) TestShowToastDefaults() {
	toast := s.Notifier.ShowToast("saved", "", 0)

	assert.NotEmpty(s.T(), toast.ID)
	assert.Equal(s.T(), domain.SeverityInfo, toast.Severity)
	assert.Equal(s.T(), time.Minute, toast.Duration)

	Expect(s.Notifier.Active()).To(HaveLen(1))
}

func (s *NotifierSuite) TestUnknownSeverityFallsBackToInfo() {
	toast := s.Notifier.ShowToast("odd", domain.Severity("fatal"), 0)

	assert.Equal(s.T(), domain.SeverityInfo, toast.Severity)
}

func (s *NotifierSuite) TestActiveKeepsCreationOrder() {
	first := s.Notifier.ShowToast("first", domain.SeverityError, 0)
	second := s.Notifier.ShowToast("second", domain.SeverityWarning, 0)
	third := s.Notifier.ShowToast("second", domain.SeverityWarning, 0)

	active := s.Notifier.Active()

	Expect(active).To(HaveLen(3))
	Expect(active[0].ID).To(Equal(first.ID))
	Expect(active[1].ID).To(Equal(second.ID))

	// no deduplication: identical messages coexist
	Expect(active[2].ID).To(Equal(third.ID))
	Expect(active[2].ID).ToNot(Equal(second.ID))
}

func (s *NotifierSuite) TestDismissRemovesToast() {
	toast := s.Notifier.ShowToast("bye", domain.SeverityInfo, 0)
	keep := s.Notifier.ShowToast("stay", domain.SeverityInfo, 0)

	s.Notifier.Dismiss(toast.ID)

	active := s.Notifier.Active()
	Expect(active).To(HaveLen(1))
	Expect(active[0].ID).To(Equal(keep.ID))
}

func (s *NotifierSuite) TestDismissIsIdempotent() {
	toast := s.Notifier.ShowToast("bye", domain.SeverityInfo, 0)

	s.Notifier.Dismiss(toast.ID)
	s.Notifier.Dismiss(toast.ID)
	s.Notifier.Dismiss("never-existed")

	Expect(s.Notifier.Active()).To(BeEmpty())
}

func (s *NotifierSuite) TestAutoExpiry() {
	s.Notifier.ShowToast("short lived", domain.SeverityInfo, 20*time.Millisecond)

	Expect(s.Notifier.Active()).To(HaveLen(1))

	Eventually(func() []domain.Notification {
		return s.Notifier.Active()
	}, "1s", "10ms").Should(BeEmpty())
}

func (s *NotifierSuite) TestExpiryOnlyRemovesItsOwnToast() {
	s.Notifier.ShowToast("short lived", domain.SeverityInfo, 20*time.Millisecond)
	keep := s.Notifier.ShowToast("long lived", domain.SeverityInfo, time.Minute)

	Eventually(func() []domain.Notification {
		return s.Notifier.Active()
	}, "1s", "10ms").Should(HaveLen(1))

	Expect(s.Notifier.Active()[0].ID).To(Equal(keep.ID))
}
