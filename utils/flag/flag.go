package flag

import "flag"

var (
	// ServiceName tags logs so that multiple binaries sharing this
	// module are distinguishable in aggregated output.
	ServiceName = flag.String("service", "api_server", "name of the service")
)

func ParseFlags() {
	flag.Parse()
}
