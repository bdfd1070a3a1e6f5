package main

import nej "github.com/nejtool/nej/cmd/nej"

func main() { nej.Execute() }
