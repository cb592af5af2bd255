package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// OpenDailyLogFile mở (hoặc tạo) file logs theo ngày trong dir
func OpenDailyLogFile(dir string, now time.Time) (*os.File, error) {
	// Tạo thư mục logs nếu chưa tồn tại
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	name := filepath.Join(dir, fmt.Sprintf("app-%s.log", now.Format("2006-01-02")))
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
