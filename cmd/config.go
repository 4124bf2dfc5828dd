package cmd

import "github.com/delayrun/delayrun/internal/lifecycle"

// graceDelay is how long the process lives after launching the command.
// Output the command writes after this window is lost.
var graceDelay = lifecycle.GraceDelay

const DESCRIPTION = `
delayrun waits for the given amount of time, then runs a command through
the shell and prints its output. While waiting, press enter to see the
remaining time or type "c" and enter to see the pending command.

Flags:
  -d <n>      days to wait
  -h <n>      hours to wait
  -m <n>      minutes to wait
  -s <n>      seconds to wait
  -t <cron>   run at the next tick of a 5-field cron expression instead
  -c <cmd>    command to run; every word up to the next flag belongs to it
  -p          show a countdown bar on stderr
  --help      print this help
  --version   print the version

Example:
        delayrun -h 1 -m 20 -c cd ../gitProject && git push
        delayrun -t 30 4 * * 1 -c ./backup.sh
`

const HELP_TEMPL = `Usage: {{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}} [arguments...]{{end}}
{{.Description}}
`
