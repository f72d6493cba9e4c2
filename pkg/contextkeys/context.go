package contextkeys

import (
	"context"

	"gorm.io/gorm"
)

type contextKey string

// DBContextKey - ключ для *gorm.DB запроса (пул или транзакция).
// Строковое значение также используется как ключ gin.Context.
const DBContextKey = contextKey("db")

// GinKey возвращает ключ в виде строки для c.Set / c.Get.
func GinKey() string {
	return string(DBContextKey)
}

// WithDB кладет db в контекст. Тесты и вызовы внутри транзакции используют
// это, чтобы DBMiddleware отдал хендлерам именно эту транзакцию.
func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, DBContextKey, db)
}

// DBFromContext достает db, положенный WithDB.
func DBFromContext(ctx context.Context) (*gorm.DB, bool) {
	db, ok := ctx.Value(DBContextKey).(*gorm.DB)
	return db, ok && db != nil
}
