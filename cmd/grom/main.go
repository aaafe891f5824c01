// Command grom inflects class names and builds resource URLs the way the
// mapping layer does, for checking routes by hand.
//
//	grom inflect plural ContactPerson             # contact_people
//	grom url association DummyPerson 1 Party --optional current
//	# https://api.example.com/dummy_people/1/parties/current.ttl
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
