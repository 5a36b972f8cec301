package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/unspoken/internal/buildinfo"
	"github.com/dmitrijs2005/unspoken/internal/common"
	"github.com/dmitrijs2005/unspoken/internal/models"
)

const barWidth = 40

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func feelingFlag(fs *flag.FlagSet) *string {
	return fs.String("feeling", models.FeelingLove, "one of: "+strings.Join(models.Feelings, ", "))
}

func checkFeeling(f string) error {
	if !models.IsKnownFeeling(f) {
		return fmt.Errorf("%w: unknown feeling %q (choose one of %s)",
			common.ErrValidation, f, strings.Join(models.Feelings, ", "))
	}
	return nil
}

func (a *App) printLetter(l models.Letter) {
	fmt.Fprintf(a.out, "%s · %s\n%s\n\n", l.Feeling, l.Timestamp.Format(common.TimestampLayout), l.Message)
}

// Write saves a letter.
func (a *App) Write(ctx context.Context, args []string) error {
	fs := a.newFlagSet("write")
	feeling := feelingFlag(fs)
	message := fs.String("message", "", "letter text; read from stdin when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkFeeling(*feeling); err != nil {
		return err
	}

	text := *message
	if strings.TrimSpace(text) == "" {
		var err error
		text, err = GetMultiline(a.reader, "Your Message", a.out)
		if err != nil {
			return err
		}
	}

	letter, err := a.letters.Save(ctx, *feeling, text)
	if errors.Is(err, common.ErrValidation) {
		fmt.Fprintln(a.out, "Please enter a message.")
		return err
	}
	if err != nil {
		return err
	}

	a.logger.Debug(ctx, "letter saved", "id", letter.ID, "feeling", letter.Feeling)
	fmt.Fprintln(a.out, "Your letter has been saved.")
	return nil
}

// Search lists letters with one feeling.
func (a *App) Search(ctx context.Context, args []string) error {
	fs := a.newFlagSet("search")
	feeling := feelingFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkFeeling(*feeling); err != nil {
		return err
	}

	items, count, err := a.letters.ByFeeling(ctx, *feeling)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Found %d letters tagged with %s\n\n", count, *feeling)
	for _, l := range items {
		a.printLetter(l)
	}
	return nil
}

// Stats draws the per-feeling counts as a text bar chart.
func (a *App) Stats(ctx context.Context) error {
	counts, err := a.letters.FeelingCounts(ctx)
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		fmt.Fprintln(a.out, "No letters yet to generate timeline.")
		return nil
	}
	writeTextChart(a.out, counts)
	return nil
}

func writeTextChart(w io.Writer, counts []models.FeelingCount) {
	labelW, maxCount := 0, 0
	for _, c := range counts {
		labelW = max(labelW, len(c.Feeling))
		maxCount = max(maxCount, c.Count)
	}

	fmt.Fprintln(w, models.TimelineTitle)
	fmt.Fprintf(w, "(%s)\n", models.TimelineAxisLabel)
	for _, c := range counts {
		n := 0
		if maxCount > 0 {
			n = c.Count * barWidth / maxCount
		}
		if n == 0 && c.Count > 0 {
			n = 1
		}
		fmt.Fprintf(w, "%-*s | %s %d\n", labelW, c.Feeling, strings.Repeat("#", n), c.Count)
	}
}

// Random prints one letter picked at random.
func (a *App) Random(ctx context.Context) error {
	letter, err := a.letters.RandomLetter(ctx)
	if err != nil {
		return err
	}
	if letter == nil {
		fmt.Fprintln(a.out, "No letters saved yet.")
		return nil
	}
	fmt.Fprintf(a.out, "Feeling: %s · %s\n\n%s\n", letter.Feeling,
		letter.Timestamp.Format(common.TimestampLayout), letter.Message)
	return nil
}

// askSecret prompts for the view secret. An empty answer is not granted and
// not an error; a wrong one prints the denial and returns ErrAccessDenied.
func (a *App) askSecret() (bool, error) {
	pw, err := GetPassword(a.out, "Enter Password")
	if err != nil {
		return false, err
	}
	defer common.WipeByteArray(pw)

	if len(pw) == 0 {
		return false, nil
	}
	if !a.gate.CheckAccess(string(pw)) {
		fmt.Fprintln(a.out, "Incorrect password.")
		return false, ErrAccessDenied
	}
	return true, nil
}

// All lists every letter once the view secret has been entered.
func (a *App) All(ctx context.Context) error {
	granted, err := a.askSecret()
	if !granted {
		return err
	}

	items, err := a.letters.ListAll(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Access granted.")
	fmt.Fprintln(a.out)
	for _, l := range items {
		a.printLetter(l)
	}
	return nil
}

// Remind prints the reminder line when one is due.
func (a *App) Remind(ctx context.Context) error {
	due, err := a.letters.ShouldRemind(ctx)
	if err != nil {
		return err
	}
	if due {
		fmt.Fprintln(a.out, "It's a good time to write. Take a moment for yourself.")
	}
	return nil
}

// Backup uploads every letter to object storage. It exposes the same data as
// All, so it asks for the view secret first.
func (a *App) Backup(ctx context.Context) error {
	granted, err := a.askSecret()
	if err != nil {
		return err
	}
	if !granted {
		return ErrAccessDenied
	}

	items, err := a.letters.ListAll(ctx)
	if err != nil {
		return err
	}

	key, err := a.exporter.Export(ctx, items)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	a.logger.Info(ctx, "backup uploaded", "bucket", a.config.S3Bucket, "key", key, "count", len(items))
	fmt.Fprintf(a.out, "Backed up %d letters to s3://%s/%s\n", len(items), a.config.S3Bucket, key)
	return nil
}

// Version prints build information.
func (a *App) Version() {
	buildinfo.PrintBuildData(a.out)
}
