// Command venuectl manages the schema and admin credentials of the site.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("venuectl")
		os.Exit(1)
	}
}
