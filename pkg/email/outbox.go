package email

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const outboxTimeLayout = "20060102-150405"

// Outbox stores simulated emails as standalone HTML files in a directory
type Outbox struct {
	dir string
	now func() time.Time
}

// NewOutbox creates an Outbox rooted at dir. The directory is created on first save.
func NewOutbox(dir string) *Outbox {
	return &Outbox{dir: dir, now: time.Now}
}

// Dir returns the directory files are written to
func (o *Outbox) Dir() string {
	return o.dir
}

// Save writes html to a new file named {timestamp}-{uuid}.html and returns its path
func (o *Outbox) Save(html string) (string, error) {
	if err := os.MkdirAll(o.dir, 0o755); err != nil {
		return "", fmt.Errorf("outbox: mkdir: %w", err)
	}

	name := fmt.Sprintf("%s-%s.html", o.now().Format(outboxTimeLayout), uuid.NewString())
	dest := filepath.Join(o.dir, name)

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("outbox: create: %w", err)
	}

	if _, err := f.WriteString(html); err != nil {
		f.Close()
		return "", fmt.Errorf("outbox: write: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("outbox: close: %w", err)
	}

	return dest, nil
}
