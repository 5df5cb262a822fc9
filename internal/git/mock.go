package git

import "context"

// Compile-time check that MockRunner implements Runner.
var _ Runner = (*MockRunner)(nil)

// MockRunner records every invocation. Each call is answered by RunFunc when
// set; otherwise it succeeds with empty output.
type MockRunner struct {
	RunFunc func(dir string, args ...string) (string, error)

	// Calls holds the arguments of every Run call, in order.
	Calls [][]string
	// Dirs holds the directory of every Run call, in order.
	Dirs []string
}

func (m *MockRunner) Run(_ context.Context, dir string, args ...string) (string, error) {
	m.Calls = append(m.Calls, append([]string(nil), args...))
	m.Dirs = append(m.Dirs, dir)
	if m.RunFunc != nil {
		return m.RunFunc(dir, args...)
	}
	return "", nil
}
