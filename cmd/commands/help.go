package commands

import "fmt"

const help = `prana: blog content service.

usage:
  prana run <config_path>      start the HTTP server
  prana events <config_path>   consume and log blog lifecycle events
  prana version                print the version
  prana help                   print this message`

func HandleHelp(_ []string) {
	fmt.Println(help) //nolint
}
