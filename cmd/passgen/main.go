// Command passgen is the interactive password generator menu.
package main

import "os"

func main() {
	runMenu(os.Stdin, os.Stdout)
}
