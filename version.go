package main

var Version = "0.1.0"
