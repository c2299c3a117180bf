// Package ethereum anchors certificate digests on an EVM chain through the
// SignatureChain contract. All heterogeneity of the underlying client lives
// here; callers only ever see the canonical ledger.Entry shape.
package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"signet/internal/ledger"
	"signet/internal/platform/config"
)

// signatureChainABI is the deployed contract interface: exactly one write
// and one read operation.
const signatureChainABI = `[
	{
		"name": "storeCertificate",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "certificateNumber", "type": "string"},
			{"name": "hash", "type": "string"}
		],
		"outputs": []
	},
	{
		"name": "getCertificate",
		"type": "function",
		"stateMutability": "view",
		"inputs": [
			{"name": "certificateNumber", "type": "string"}
		],
		"outputs": [
			{"name": "certificateNumber", "type": "string"},
			{"name": "hash", "type": "string"},
			{"name": "timestamp", "type": "uint256"}
		]
	}
]`

// anchorGasLimit matches the deployed contract's storeCertificate cost
// envelope.
const anchorGasLimit = 300000

// Client talks to the SignatureChain contract with a single anchoring
// identity. Writes are serialized: the chain orders transactions from one
// account by nonce, so concurrent submissions from the same key would
// conflict rather than parallelize.
type Client struct {
	eth      *ethclient.Client
	contract *bind.BoundContract
	opts     *bind.TransactOpts

	confirmTimeout time.Duration

	writeMu sync.Mutex
}

// New dials the RPC endpoint and binds the contract.
func New(cfg config.LedgerConfig) (*Client, error) {
	if cfg.RPCURL == "" {
		return nil, errors.New("ledger RPC URL is required")
	}
	eth, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial ledger rpc: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse anchoring key: %w", err)
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(cfg.ChainID))
	if err != nil {
		return nil, fmt.Errorf("build transactor: %w", err)
	}
	opts.GasLimit = anchorGasLimit

	parsed, err := abi.JSON(strings.NewReader(signatureChainABI))
	if err != nil {
		return nil, fmt.Errorf("parse contract abi: %w", err)
	}
	contract := bind.NewBoundContract(common.HexToAddress(cfg.ContractAddress), parsed, eth, eth, eth)

	return &Client{
		eth:            eth,
		contract:       contract,
		opts:           opts,
		confirmTimeout: cfg.ConfirmTimeout,
	}, nil
}

// Anchor submits storeCertificate and blocks until the transaction is mined.
// Once the submission is broadcast it cannot be cancelled, so confirmation
// waits on its own timeout rather than the caller's context alone.
func (c *Client) Anchor(ctx context.Context, identifier, digest string) (ledger.Receipt, error) {
	c.writeMu.Lock()
	tx, err := c.transact(ctx, identifier, digest)
	c.writeMu.Unlock()
	if err != nil {
		return ledger.Receipt{}, &ledger.WriteError{Err: err}
	}

	waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.confirmTimeout)
	defer cancel()

	receipt, err := bind.WaitMined(waitCtx, c.eth, tx)
	if err != nil {
		return ledger.Receipt{}, &ledger.WriteError{Err: fmt.Errorf("await confirmation: %w", err)}
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return ledger.Receipt{}, &ledger.WriteError{Err: errors.New("transaction reverted")}
	}

	anchoredAt := time.Now().UTC()
	if header, err := c.eth.HeaderByNumber(waitCtx, receipt.BlockNumber); err == nil {
		anchoredAt = time.Unix(int64(header.Time), 0).UTC()
	}

	return ledger.Receipt{
		TxRef:      tx.Hash().Hex(),
		AnchoredAt: anchoredAt,
	}, nil
}

func (c *Client) transact(ctx context.Context, identifier, digest string) (*types.Transaction, error) {
	opts := *c.opts
	opts.Context = ctx
	tx, err := c.contract.Transact(&opts, "storeCertificate", identifier, digest)
	if err != nil {
		return nil, fmt.Errorf("submit storeCertificate: %w", err)
	}
	return tx, nil
}

// Lookup reads getCertificate and normalizes whatever shape comes back.
func (c *Client) Lookup(ctx context.Context, identifier string) (ledger.Entry, error) {
	var out []interface{}
	err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getCertificate", identifier)
	if err != nil {
		return ledger.Entry{}, &ledger.ReadError{Err: fmt.Errorf("call getCertificate: %w", err)}
	}
	return normalizeResult(out)
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}
