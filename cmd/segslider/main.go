// Command segslider opens a window with a discrete slider, or prints the
// geometry a slider would use.
package main

func main() {
	Execute()
}
