package userctx

import "context"

// Context key type
type contextKey string

const adminNameKey contextKey = "admin_name"

// SetAdminName adds the authenticated admin username to the request context
func SetAdminName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, adminNameKey, name)
}

// AdminName retrieves the authenticated admin username from the request
// context, or "" when the request is unauthenticated.
func AdminName(ctx context.Context) string {
	name, ok := ctx.Value(adminNameKey).(string)
	if !ok {
		return ""
	}
	return name
}
