package jobs

import (
	"time"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StartScheduler runs the recurring background jobs. The returned cron is
// already started; the caller owns stopping it on shutdown.
func StartScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	// Sweep shortly after midnight so invoices flip to overdue the day
	// after their due date.
	c.AddFunc("5 0 * * *", func() {
		MarkOverdueInvoices(db, time.Now())
	})

	c.Start()
	return c
}

// MarkOverdueInvoices flips sent invoices whose due date has passed to
// overdue. Due dates are "YYYY-MM-DD" strings, so the comparison is a plain
// string ordering against today's date.
func MarkOverdueInvoices(db *gorm.DB, now time.Time) {
	today := now.Format("2006-01-02")

	result := db.Model(&models.Invoice{}).
		Where("status = ? AND due_date < ?", models.InvoiceSent, today).
		Update("status", models.InvoiceOverdue)
	if result.Error != nil {
		utils.Logger().Error("overdue invoice sweep failed", zap.Error(result.Error))
		return
	}

	if result.RowsAffected > 0 {
		utils.Logger().Info("marked invoices overdue",
			zap.Int64("count", result.RowsAffected),
			zap.String("as_of", today))
	}
}
