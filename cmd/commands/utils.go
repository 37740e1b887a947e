package commands

import (
	"os"

	"prana/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("prana error", "err", err.Error())
	os.Exit(1)
}
