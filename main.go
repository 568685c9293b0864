// main.go
//
// Entry point for the quiz server.
// Boot order:
//   1. Load .env (development convenience) and set the log level.
//   2. Open + migrate the SQLite database (DICT_DB).
//   3. Resolve the dictionary: persisted blob → WORDS_FILE → embedded defaults.
//   4. Start the HTTP server.

package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nadiamel/huroof/apps/go-server/assets"
	"github.com/nadiamel/huroof/apps/go-server/internal/dictionary"
	"github.com/nadiamel/huroof/apps/go-server/internal/httpserver"
	"github.com/nadiamel/huroof/apps/go-server/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	db, err := openDB(getEnv("DICT_DB", "./data/quiz.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	blob := store.NewSQLite(db)

	dict, src, err := loadDictionary(context.Background(), blob)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}
	log.Info().Str("source", src).Int("words", dict.Len()).Msg("dictionary loaded")

	enforceFormat := getEnv("CHECK_FORMAT", "off") == "strict"
	srv := httpserver.New(dict, blob, enforceFormat)
	port := getEnv("PORT", "5176")
	log.Info().Str("port", port).Bool("strictFormat", enforceFormat).Msg("starting go-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// loadDictionary resolves the startup dictionary, first hit wins:
//  1. the persisted blob (key "arabicDictionary");
//  2. WORDS_FILE, one word per line (read failure is soft: log and fall through);
//  3. the embedded default list.
func loadDictionary(ctx context.Context, blob store.Blob) (*dictionary.Dictionary, string, error) {
	dict := dictionary.New(nil)

	loaded, err := dict.LoadFrom(ctx, blob)
	if err != nil {
		log.Warn().Err(err).Msg("read persisted dictionary")
	}
	if loaded {
		return dict, "persisted", nil
	}

	if path := os.Getenv("WORDS_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("read words file, falling back to defaults")
		} else {
			dict.ReplaceAll(dictionary.ParseText(string(data)))
			return dict, "file", nil
		}
	}

	words, err := assets.DefaultWords()
	if err != nil {
		return nil, "", err
	}
	dict.ReplaceAll(words)
	return dict, "embedded", nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
