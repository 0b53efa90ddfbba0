package tests

// Mock generation example for handler tests.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name Syncer --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename syncer_mock.go --with-expecter
