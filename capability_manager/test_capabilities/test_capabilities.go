package main

import (
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/caps-linux/capability"
	"code.cloudfoundry.org/caps-linux/capability_manager"
	"code.cloudfoundry.org/lager"
)

func main() {
	logger := lager.NewLogger("test-capabilities")
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.INFO))

	manager := capability_manager.NewKernelManager(logger)
	if err := manager.Clear(0, capability.PERMITTED); err != nil {
		panic(err)
	}
	fmt.Println("banana")

	time.Sleep(time.Hour)
}
