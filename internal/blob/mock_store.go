package blob

import "context"

type MockStore struct {
	SaveFunc    func(ctx context.Context, content []byte, extension, container, contentType string) (string, error)
	ReplaceFunc func(ctx context.Context, content []byte, extension, container, oldRef, contentType string) (string, error)
	DeleteFunc  func(ctx context.Context, ref, container string) error
}

func (m *MockStore) Save(ctx context.Context, content []byte, extension, container, contentType string) (string, error) {
	if m.SaveFunc == nil {
		return "", nil
	}
	return m.SaveFunc(ctx, content, extension, container, contentType)
}

func (m *MockStore) Replace(ctx context.Context, content []byte, extension, container, oldRef, contentType string) (string, error) {
	if m.ReplaceFunc == nil {
		return "", nil
	}
	return m.ReplaceFunc(ctx, content, extension, container, oldRef, contentType)
}

func (m *MockStore) Delete(ctx context.Context, ref, container string) error {
	if m.DeleteFunc == nil {
		return nil
	}
	return m.DeleteFunc(ctx, ref, container)
}
