package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/glossd/deployok/client"
	"github.com/glossd/deployok/common"
	"github.com/glossd/deployok/server"
)

func main() {
	args := os.Args
	if len(args) < 2 {
		run("")
		return
	}

	switch args[1] {
	case "run":
		if len(args) == 2 {
			run("")
			return
		}
		if len(args) != 4 || args[2] != "-f" {
			printFlags("run", Flag{Def: "-f FILENAME", Des: "path to the server config"})
			os.Exit(2)
		}
		run(args[3])
	case "probe":
		port := common.DefaultPort
		if len(args) > 2 {
			p, err := strconv.Atoi(args[2])
			if err != nil {
				fmt.Println("port should be a number, got", args[2])
				os.Exit(2)
			}
			port = p
		}
		err := client.Probe(port, client.DefaultProbeTimeout)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println("OK")
	case "help":
		printHelp()
	default:
		fmt.Printf("%s is not a valid command\n", args[1])
		printHelp()
		os.Exit(2)
	}
}

func run(configPath string) {
	conf, err := common.ReadServerConfig(configPath)
	if err != nil {
		log.Fatalf("Invalid server config: %s\n", err)
	}
	err = common.LoadDotenv(".env")
	if err != nil {
		log.Fatalf("%s\n", err)
	}
	err = server.Run(conf, common.ReadDeploymentInfo())
	if err != nil {
		log.Fatalf("Server failed: %s\n", err)
	}
}

type Flag struct {
	// Definition e.g. -f FILENAME
	Def string
	// Description e.g. path to the config
	Des string
}

func printFlags(cmd string, flags ...Flag) {
	fmt.Printf("The flags for %s command are:\n", cmd)
	for _, f := range flags {
		fmt.Println("	" + f.Def + "    " + f.Des)
	}
}

func printHelp() {
	fmt.Printf(`The commands are:
	run [-f FILENAME]       serve the deployment page, the default when no command is given
	probe [PORT]            check that the page is served on the local PORT, defaults to 80
	help                    print the list of the commands
`)
}
