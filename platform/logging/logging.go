package logging

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

// Init configures the process-wide logrus logger. LOG_LEVEL picks the level
// (default info).
func Init() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if lvl, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
