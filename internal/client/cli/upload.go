package cli

import (
	"context"
	"fmt"
)

// printfFn is a test seam for in-place progress rendering.
var printfFn = fmt.Printf

// Upload sends the whole pending list sequentially. The label argument is
// shared by every file in the batch; when empty, the user is prompted for
// optional comma-separated labels. Per-file failures are rendered and the
// batch carries on.
func (a *App) Upload(ctx context.Context, label string) error {
	files := a.album.Pending()
	if len(files) == 0 {
		printlnFn("Nothing to upload. Use 'add' first.")
		return nil
	}

	if label == "" {
		entered, err := GetSimpleText(a.reader, "Custom labels (optional, comma-separated, Enter to skip)", a.out)
		if err == nil {
			label = entered
		}
	}

	report, err := a.album.UploadAll(ctx, label, func(index int, sent, total int64) {
		renderProgress(files[index].Name, sent, total)
	})
	if err != nil {
		printlnFn("Upload failed: " + err.Error())
		return err
	}

	for _, o := range report.Outcomes {
		if o.Failed() {
			printlnFn("FAILED " + o.Name + ": " + o.Err.Error())
		} else {
			printlnFn("Uploaded " + o.Name + " -> " + o.Key)
		}
	}
	printlnFn(fmt.Sprintf("Batch %s done: %d uploaded, %d failed.", report.ID, report.Succeeded(), report.Failed()))

	return nil
}

// renderProgress redraws one file's progress line from real transfer bytes.
func renderProgress(name string, sent, total int64) {
	if total <= 0 {
		return
	}
	pct := sent * 100 / total
	_, _ = printfFn("\r%s: %3d%%", name, pct)
	if sent >= total {
		_, _ = printfFn("\n")
	}
}
