package notifier

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/constants"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
)

var (
	toastStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#7D56F4")).Padding(0, 1)
	toastHighStyle = toastStyle.Background(lipgloss.Color("#E5534B"))
	toastTimeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Toast is the in-app sink. It either prints styled lines to a writer or
// hands notifications to a channel for the dashboard to render.
type Toast struct {
	mu sync.Mutex
	w  io.Writer
	ch chan Notification
}

func NewWriterToast(w io.Writer) *Toast {
	return &Toast{w: w}
}

// NewChannelToast buffers up to size notifications. When the buffer is full
// new notifications are dropped rather than blocking the scheduler.
func NewChannelToast(size int) *Toast {
	if size < 1 {
		size = 1
	}
	return &Toast{ch: make(chan Notification, size)}
}

func (t *Toast) C() <-chan Notification {
	return t.ch
}

func (t *Toast) Notify(n Notification) error {
	if t.ch != nil {
		select {
		case t.ch <- n:
		default:
		}
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := fmt.Fprintln(t.w, Render(n))
	return err
}

// Render styles a notification as a one-line toast.
func Render(n Notification) string {
	style := toastStyle
	if n.Priority == models.PriorityHigh {
		style = toastHighStyle
	}
	stamp := ""
	if !n.At.IsZero() {
		stamp = toastTimeStyle.Render(n.At.Format(constants.TimeFormat)) + " "
	}
	return stamp + style.Render("🔔 "+n.Text())
}
