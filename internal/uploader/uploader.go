// Package uploader holds the selection state behind one upload widget.
//
// An Uploader never reads or transmits file content. It remembers the name of
// the last file picked and, on submit, tells the visitor what it holds.
package uploader

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// File is a selected file reference. Only the display name is kept.
type File struct {
	Name string
}

// Kind distinguishes the two notifications a submit can produce.
type Kind string

const (
	KindSuccess     Kind = "success"
	KindNoSelection Kind = "no-selection"
)

const noSelectionMessage = "No file selected!"

// Notification is shown to the visitor after a submit.
type Notification struct {
	Kind     Kind
	Message  string
	FileName string // empty unless Kind == KindSuccess
}

// FileChooser yields at most one file-selection event. ok is false when the
// visitor did not pick anything, in which case the current selection stays.
type FileChooser interface {
	Choose(ctx context.Context) (f File, ok bool, err error)
}

// Notifier shows a notification the visitor has to dismiss.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification) error

func (f NotifierFunc) Notify(ctx context.Context, n Notification) error { return f(ctx, n) }

// Uploader is not safe for concurrent use; callers serialise access.
type Uploader struct {
	selected *File
	notifier Notifier
	logger   *zap.Logger
}

func New(notifier Notifier, logger *zap.Logger) *Uploader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Uploader{notifier: notifier, logger: logger}
}

// Select replaces any prior selection. No type, size or extension check is made.
func (u *Uploader) Select(f File) {
	u.selected = &f
}

// Choose asks c for a file and selects it if one was picked.
func (u *Uploader) Choose(ctx context.Context, c FileChooser) error {
	f, ok, err := c.Choose(ctx)
	if err != nil {
		return fmt.Errorf("choose file: %w", err)
	}
	if ok {
		u.Select(f)
	}
	return nil
}

// Selected returns the current selection, if any.
func (u *Uploader) Selected() (File, bool) {
	if u.selected == nil {
		return File{}, false
	}
	return *u.selected, true
}

// Submit reports the current selection through the notifier. It does not
// change the selection.
func (u *Uploader) Submit(ctx context.Context) (Notification, error) {
	var n Notification
	if u.selected != nil {
		u.logger.Info("File selected", zap.String("name", u.selected.Name))
		n = Notification{
			Kind:     KindSuccess,
			Message:  fmt.Sprintf(`File "%s" uploaded successfully!`, u.selected.Name),
			FileName: u.selected.Name,
		}
	} else {
		n = Notification{Kind: KindNoSelection, Message: noSelectionMessage}
	}
	if u.notifier != nil {
		if err := u.notifier.Notify(ctx, n); err != nil {
			return n, fmt.Errorf("notify: %w", err)
		}
	}
	return n, nil
}
