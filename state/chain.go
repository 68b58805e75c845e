package state

import (
	"errors"
	"fmt"
)

var (
	ErrorChainIdEmpty      = errors.New("chain id is empty")
	ErrorChainMethodUnkown = errors.New("chain verification method unknown")
)

// ChainConfig describes one external chain the bridge accepts transfers
// to/from. The verification method is informational for the bridge core:
// the proof system it names runs outside and only its verdict reaches us.
type ChainConfig struct {
	ChainId               string
	Name                  string
	Method                VerificationMethod
	RequiredConfirmations uint64
	Active                bool
}

func (c *ChainConfig) String() string {
	return fmt.Sprintf("%+v", *c)
}

func (c *ChainConfig) Validate() error {
	if c.ChainId == "" {
		return ErrorChainIdEmpty
	}
	if !c.Method.Valid() {
		return ErrorChainMethodUnkown
	}
	return nil
}

type sqlChain struct {
	ChainId       string
	Name          string
	Method        string
	Confirmations uint64
	Active        bool
}

func (s *sqlChain) encode(c *ChainConfig) (*sqlChain, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	s.ChainId = c.ChainId
	s.Name = c.Name
	s.Method = string(c.Method)
	s.Confirmations = c.RequiredConfirmations
	s.Active = c.Active

	return s, nil
}

func (s *sqlChain) decode() (*ChainConfig, error) {
	return &ChainConfig{
		ChainId:               s.ChainId,
		Name:                  s.Name,
		Method:                VerificationMethod(s.Method),
		RequiredConfirmations: s.Confirmations,
		Active:                s.Active,
	}, nil
}
