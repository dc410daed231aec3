package mail

import "context"

// MockMessageID is the identifier returned for every message "sent" by Mock.
const MockMessageID = "mock-12345"

// Mock is a Mail implementation that performs no network I/O.
type Mock struct{}

// NewMock returns the mock provider.
func NewMock() *Mock {
	return &Mock{}
}

// Provider implements Mail.
func (*Mock) Provider() Provider {
	return ProviderMock
}

// Send always succeeds with MockMessageID.
func (*Mock) Send(ctx context.Context, _ Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", providerError(ProviderMock, err)
	}
	return MockMessageID, nil
}

// Close implements io.Closer for interface compatibility.
func (*Mock) Close() error {
	return nil
}
