// Package config turns the raw command line into the immutable invocation
// config of a single delayrun process.
//
// Flags do not follow the usual Go flag rules: the value of a flag is every
// token after it up to the next token beginning with "-", joined by single
// spaces. This lets a command be passed unquoted:
//
//	delayrun -m 20 -c cd ../project && git push
package config
