package api_context

import "context"

type ctxKey string

const (
	VideoIDKey   ctxKey = "videoID"
	ObjectKeyKey ctxKey = "objectKey"
)

func VideoIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(VideoIDKey).(string)
	return id, ok
}

func WithVideoID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, VideoIDKey, id)
}

func ObjectKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(ObjectKeyKey).(string)
	return key, ok
}

func WithObjectKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, ObjectKeyKey, key)
}
