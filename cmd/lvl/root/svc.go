package root

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/pko841923-dot/Level-System/internal/config"
	"github.com/pko841923-dot/Level-System/internal/engine"
	"github.com/pko841923-dot/Level-System/internal/storage"
	"github.com/pko841923-dot/Level-System/internal/ui"
)

// cliNotifier prints reward notifications inline, after a command's own
// output.
type cliNotifier struct {
	out io.Writer
}

func (n cliNotifier) Notify(note engine.Notification) {
	line := fmt.Sprintf("%s %s", note.Icon, ui.Gold.Render(note.Title))
	if note.Detail != "" {
		line += " " + ui.Muted.Render(note.Detail)
	}
	if note.Coins > 0 || note.SkillPoints > 0 {
		line += " " + ui.Muted.Render(fmt.Sprintf("(+%d coins, +%d SP)", note.Coins, note.SkillPoints))
	}
	fmt.Fprintln(n.out, line)
}

func openService(ctx context.Context, out io.Writer) (*engine.Service, config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	path := cfg.DBPath
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, config.Config{}, nil, err
		}
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	svc, err := engine.NewService(ctx, storage.NewDocumentRepo(db),
		engine.WithNotifier(cliNotifier{out: out}),
		engine.WithLogger(log),
	)
	if err != nil {
		cleanup()
		return nil, config.Config{}, nil, err
	}
	return svc, cfg, cleanup, nil
}
