package jobs

import (
	"context"
	"log"
	"time"

	"ratecard/types"

	"github.com/robfig/cron/v3"
)

// DefaultPurgeSpec chạy lúc 0h mỗi ngày
const DefaultPurgeSpec = "0 0 * * *"

// OverridePurger xóa các override của những ngày đã qua
type OverridePurger interface {
	PurgeBefore(ctx context.Context, before types.Date) (int64, error)
}

// PurgeJob trả về hàm xóa override trước ngày hiện tại
func PurgeJob(purger OverridePurger, now func() time.Time) func() {
	return func() {
		today := types.DateOf(now())
		log.Printf("Đang xóa override trước ngày %s", today)
		removed, err := purger.PurgeBefore(context.Background(), today)
		if err != nil {
			log.Printf("Lỗi khi xóa override cũ: %v", err)
			return
		}
		log.Printf("Đã xóa %d override cũ", removed)
	}
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, purger OverridePurger, spec string) error {
	if spec == "" {
		spec = DefaultPurgeSpec
	}
	if _, err := c.AddFunc(spec, PurgeJob(purger, time.Now)); err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
