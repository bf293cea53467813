// pkg/render/filename.go

package render

import "time"

// FileName names a downloaded receipt after the moment of download,
// e.g. 20250314_09-05.pdf.
func FileName(t time.Time) string {
	return t.Format("20060102_15-04") + ".pdf"
}
