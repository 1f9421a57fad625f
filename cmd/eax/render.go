package main

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const dateLayout = "02 Jan 15:04"

// Renderer turns entries into listing lines.
type Renderer struct {
	styler Styler
	log    logrus.FieldLogger
}

func NewRenderer(styler Styler, log logrus.FieldLogger) *Renderer {
	return &Renderer{styler: styler, log: log}
}

// Render returns the line for e. The long form re-reads the metadata of
// the path, so a file removed since classification fails here.
func (r *Renderer) Render(e *Entry, opts Options) (string, error) {
	name := e.Kind.Style(r.styler, e.Name())
	if !opts.Long {
		return name, nil
	}

	info, err := os.Stat(e.Path)
	if err != nil {
		return "", newEntryError("render", e.Path, err)
	}

	size := formatSize(info.Size(), info.IsDir(), opts.Bytes)
	if !info.IsDir() {
		size = r.styler.Style(RoleSize, size)
	}

	owner, group := ownership(info, r.log)
	user := r.styler.Style(RoleUser, owner)
	if opts.Group {
		user += r.styler.Style(RoleGroup, " "+group)
	}

	stamp := changeTime(info)
	if opts.Modified {
		stamp = info.ModTime()
	}

	return strings.Join([]string{
		formatRights(info.Mode(), info.IsDir(), opts.Group, r.styler),
		size,
		user,
		r.styler.Style(RoleDate, formatDate(stamp)),
		name,
	}, " "), nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
