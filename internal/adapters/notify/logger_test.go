package notify_test

import (
	"testing"

	"go.trai.ch/kin/internal/adapters/notify"
	"go.trai.ch/kin/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLogNotifier_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("No child nodes available").Times(1)

	notify.NewLogNotifier(mockLogger).Notify(t.Context(), "No child nodes available")
}
