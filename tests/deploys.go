package tests

import (
	"crypto/sha256"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

const (
	commercePath    = "../contracts/commerce"
	trustPath       = "../contracts/trust"
	testStakingPath = "../internal/testcontracts/teststaking"
)

// Trust score formula coefficients shared by all tests.
const (
	baseScore              = 500
	ratingMultiplier       = 25
	stakeAmountDenominator = 250
	minStakeDays           = 14
	ratingFloorDenominator = 10
	denomMultiplier        = 1_000_000

	maxStakedTokens = 100_000 * denomMultiplier
	maxStakedDays   = 365
	maxRating       = 1000

	dayMS = 24 * 60 * 60 * 1000
)

type marketplace struct {
	e *neotest.Executor

	// Committee-signed invokers. The committee is the single store admin,
	// the trust admin and the staking maintainer after deployment.
	commerce *neotest.ContractInvoker
	trust    *neotest.ContractInvoker
	staking  *neotest.ContractInvoker

	commerceHash util.Uint160
	trustHash    util.Uint160
	gasHash      util.Uint160
	withdrawAddr util.Uint160
}

// newMarketplace deploys the full contract suite on a fresh single-validator
// chain with the GAS token as the settlement token.
func newMarketplace(t *testing.T, reviewInterval int64) *marketplace {
	e := newExecutor(t)

	ctrCommerce := neotest.CompileFile(t, e.CommitteeHash, commercePath,
		path.Join(commercePath, "config.yml"))
	ctrTrust := neotest.CompileFile(t, e.CommitteeHash, trustPath,
		path.Join(trustPath, "config.yml"))
	ctrStaking := neotest.CompileFile(t, e.CommitteeHash, testStakingPath,
		path.Join(testStakingPath, "config.yml"))

	neb, err := ctrCommerce.NEF.Bytes()
	require.NoError(t, err)
	commerceCodeHash := sha256.Sum256(neb)

	gasHash := e.NativeHash(t, nativenames.Gas)
	withdrawAcc := e.NewAccount(t)

	e.DeployContract(t, ctrStaking, nil)
	e.DeployContract(t, ctrTrust, []any{
		e.CommitteeHash, // admin
		e.CommitteeHash, // maintainer
		ctrStaking.Hash,
		commerceCodeHash[:],
		reviewInterval,
		int64(maxStakedTokens),
		int64(maxStakedDays),
		int64(maxRating),
		[]any{
			int64(baseScore),
			int64(ratingMultiplier),
			int64(stakeAmountDenominator),
			int64(minStakeDays),
			int64(ratingFloorDenominator),
			int64(denomMultiplier),
		},
	})
	e.DeployContract(t, ctrCommerce, []any{
		e.CommitteeHash,
		gasHash,
		withdrawAcc.ScriptHash(),
		ctrTrust.Hash,
	})

	return &marketplace{
		e:            e,
		commerce:     e.CommitteeInvoker(ctrCommerce.Hash),
		trust:        e.CommitteeInvoker(ctrTrust.Hash),
		staking:      e.CommitteeInvoker(ctrStaking.Hash),
		commerceHash: ctrCommerce.Hash,
		trustHash:    ctrTrust.Hash,
		gasHash:      gasHash,
		withdrawAddr: withdrawAcc.ScriptHash(),
	}
}

func (m *marketplace) gasInvoker(signer neotest.Signer) *neotest.ContractInvoker {
	return m.e.NewInvoker(m.gasHash, signer)
}

func (m *marketplace) gasBalance(t *testing.T, acc util.Uint160) int64 {
	s, err := m.e.CommitteeInvoker(m.gasHash).TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)
	return s.Top().BigInt().Int64()
}
