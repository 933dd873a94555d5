package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"code.cloudfoundry.org/caps-linux/capability"
	"code.cloudfoundry.org/caps-linux/capability_manager"
	"code.cloudfoundry.org/lager"
)

func main() {
	var pid int
	flag.IntVar(&pid, "pid", 0, "the target thread id (0 means this process)")

	var capTypeName string
	flag.StringVar(&capTypeName, "capType", "effective", "the capability set to operate on (effective, permitted or inheritable)")

	var capName string
	flag.StringVar(&capName, "cap", "", "the capability for has, raise and drop (e.g. CAP_NET_ADMIN)")

	var capNames string
	flag.StringVar(&capNames, "caps", "", "comma-separated capabilities for set")

	var action string
	flag.StringVar(&action, "action", "read", "one of has, read, set, clear, raise, drop")

	var debug bool
	flag.BoolVar(&debug, "debug", false, "log at debug level")

	flag.Parse()

	logLevel := lager.INFO
	if debug {
		logLevel = lager.DEBUG
	}
	log := lager.NewLogger("capstool")
	log.RegisterSink(lager.NewWriterSink(os.Stderr, logLevel))

	ctype, err := capability.ParseCapType(capTypeName)
	if err != nil {
		fatal(err)
	}

	manager := capability_manager.NewKernelManager(log)

	switch action {
	case "has":
		c := parseCap(capName)
		has, err := manager.Has(pid, ctype, c)
		if err != nil {
			fatal(err)
		}
		fmt.Println(has)
	case "read":
		caps, err := manager.Read(pid, ctype)
		if err != nil {
			fatal(err)
		}
		fmt.Println(caps)
	case "set":
		caps := capability.NewSet()
		if capNames != "" {
			for _, name := range strings.Split(capNames, ",") {
				caps.Add(parseCap(name))
			}
		}
		if err := manager.Set(pid, ctype, caps); err != nil {
			fatal(err)
		}
	case "clear":
		if err := manager.Clear(pid, ctype); err != nil {
			fatal(err)
		}
	case "raise":
		if err := manager.Raise(pid, ctype, parseCap(capName)); err != nil {
			fatal(err)
		}
	case "drop":
		if err := manager.Drop(pid, ctype, parseCap(capName)); err != nil {
			fatal(err)
		}
	default:
		fmt.Println("invalid action:", action)
		os.Exit(2)
	}
}

func parseCap(name string) capability.Cap {
	c, err := capability.ParseCap(name)
	if err != nil {
		fatal(err)
	}
	return c
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %s\n", err)
	os.Exit(1)
}
