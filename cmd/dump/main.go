// Command dump saves storage items of the deployed marketplace contracts as
// JSON files. The result can be diffed between blocks or environments when
// debugging migrations.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

type storageItem struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	chainLabel := flag.String("label", "", "Label of the blockchain environment (e.g. 'testnet')")
	commerceHash := flag.String("commerce", "", "LE script hash of the deployed Commerce contract")
	trustHash := flag.String("trust", "", "LE script hash of the deployed Trust contract")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *chainLabel == "":
		log.Fatal("missing blockchain label")
	case *commerceHash == "":
		log.Fatal("missing Commerce contract hash")
	case *trustHash == "":
		log.Fatal("missing Trust contract hash")
	}

	const rootDir = "testdata"

	err := _dump(*neoRPCEndpoint, rootDir, *chainLabel, map[string]string{
		"commerce": *commerceHash,
		"trust":    *trustHash,
	})
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("marketplace contracts are successfully dumped to '%s/'\n", rootDir)
}

func _dump(neoBlockchainRPCEndpoint, rootDir, label string, contracts map[string]string) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	dir := filepath.Join(rootDir, fmt.Sprintf("%s-%d", label, b.currentBlock))

	err = os.MkdirAll(dir, 0700)
	if err != nil {
		return fmt.Errorf("create dump dir: %w", err)
	}

	for name, hashLE := range contracts {
		log.Printf("Processing contract '%s'...\n", name)

		h, err := util.Uint160DecodeStringLE(hashLE)
		if err != nil {
			return fmt.Errorf("decode '%s' contract hash: %w", name, err)
		}

		err = dumpContractStorage(b, h, filepath.Join(dir, name+".json"))
		if err != nil {
			return fmt.Errorf("dump '%s' contract storage: %w", name, err)
		}
	}

	return nil
}

func dumpContractStorage(b *remoteBlockchain, contract util.Uint160, path string) error {
	var items []storageItem

	err := b.iterateContractStorage(contract, func(key, value []byte) error {
		items = append(items, storageItem{Key: key, Value: value})
		return nil
	})
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(items, "", " ")
	if err != nil {
		return fmt.Errorf("encode storage items: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
