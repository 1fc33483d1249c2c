// Package metrics holds the prometheus collectors of the ledger daemon.
package metrics

import "github.com/goodnatureofminers/chainkeeper/internal/ledger/model"

const namespace = "chainkeeper"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func networkLabel(network model.Network) string {
	if network == "" {
		return "unknown"
	}
	return string(network)
}
