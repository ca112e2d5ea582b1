package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/chainsafe/fusion-middleware/pkg/ethereum/contracts"
)

// Receipt is the JSON view of a mined transaction receipt returned to callers.
type Receipt struct {
	TxHash          common.Hash    `json:"transactionHash"`
	BlockNumber     uint64         `json:"blockNumber"`
	BlockHash       common.Hash    `json:"blockHash"`
	Status          uint64         `json:"status"`
	GasUsed         uint64         `json:"gasUsed"`
	ContractAddress common.Address `json:"contractAddress"`
}

func newReceipt(r *types.Receipt) *Receipt {
	out := &Receipt{
		TxHash:          r.TxHash,
		BlockHash:       r.BlockHash,
		Status:          r.Status,
		GasUsed:         r.GasUsed,
		ContractAddress: r.ContractAddress,
	}
	if r.BlockNumber != nil {
		out.BlockNumber = r.BlockNumber.Uint64()
	}
	return out
}

// ForwardRequest is a meta-transaction relayed through the base chain forwarder.
type ForwardRequest struct {
	From      common.Address `json:"from"`
	To        common.Address `json:"to"`
	Value     *hexutil.Big   `json:"value"`
	Gas       *hexutil.Big   `json:"gas"`
	Nonce     *hexutil.Big   `json:"nonce"`
	Data      hexutil.Bytes  `json:"data"`
	Signature hexutil.Bytes  `json:"signature"`
}

func (r *ForwardRequest) binding() contracts.ForwarderForwardRequest {
	return contracts.ForwarderForwardRequest{
		From:  r.From,
		To:    r.To,
		Value: bigOrZero(r.Value),
		Gas:   bigOrZero(r.Gas),
		Nonce: bigOrZero(r.Nonce),
		Data:  r.Data,
	}
}

// Reservation is the base chain record of a claimed domain: the deployed
// identity contract, the reference hash it stores and its current nonce.
type Reservation struct {
	Identity      common.Address
	ReferenceHash common.Hash
	Nonce         *big.Int
}

func bigOrZero(v *hexutil.Big) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v.ToInt())
}
