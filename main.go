// Command featurecompare runs one small contract implemented in two styles
// and shows that both behave the same.
package main

import "featurecompare/internal/cli"

func main() {
	cli.Execute()
}
