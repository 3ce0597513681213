package test

import (
	"encoding/hex"
	"fmt"

	"github.com/cronokirby/saferith"

	"github.com/quorumsafe/tecdsa/pkg/paillier"
	"github.com/quorumsafe/tecdsa/pkg/party"
	"github.com/quorumsafe/tecdsa/protocols/cmp/config"
	"github.com/quorumsafe/tecdsa/protocols/cmp/keygen"
)

// primeHexes are pregenerated 1024-bit safe Blum primes, two per Paillier
// key. Searching for fresh ones takes minutes per party, far too slow for a
// test suite.
//
// These primes appear in a public repository: never use them outside tests.
var primeHexes = [...][2]string{
	{
		"cc495c9ff576a235b5ee460914c361c155ac2fe0da90cc712510e43273d547b9d5140abb00c3f50f34a2eed564dd3821ad3abe45999ee89eaa26b02f3d6d1cdc3824a75438e931f3624dd7546806f2730dfe8fcb3c07209eb57e5d1c8a3b0bbdf4009451bb6138d1cd46c059bae9a6f8d6365ed0c4c1cf01a46869007745e987",
		"cdc683d582498693f56a575733d594c39045e86292a87a2b84d3485d6ee33b5a01da6b9cc7a48947aca1bc4c5e4a8f97cdf98650b0b345d1f5c413d814c434b2a6196e039d61e82ce79d2c20f5b5b0fc9a7aa55a1bebedbaa2b11514ef89fe70499a67469799d52bfd5c90e6a04db0dc67e0aa3995bdf008b1d3bece545db3b7",
	},
	{
		"e12e7ed5b25f0edc5e24ebeff09a8140395f5dc75af75b84e7120036d3f0d0445c1ef32944fca5856c790ca66e01ffcee9c899a7f373ce27c5d0892ee71fc7b1a48fe9b8b21d87dbdbe7d893df552efe6f1988663a747e558a46f06c6d16ad10148530d8eb31a27d86669e619eacfef3a8c18893cbfb009ce98936a477cdba5b",
		"db0db8426a56095220944375d1c7af77565e57d5b399d66d90c5b83b0232eb27dde92fd7aba329a5835cf2cf92842f1047ff2cf3ecc53e127aee4ed6d6940ba8ea5f5f57fc813bdee0357242883edc9f7257a288c152188386da377874a9689c9e55d90df58bb4fc4beb487471cf9f2dd72b5490c45a1941d3a8ec07bb6198eb",
	},
	{
		"ed31d54ca824833b65f89ba3adb2725c08536ecb5a734279d2e0aa8083aef32487c765989b6afc6f3b82fcbe11bb5264df6837d19e60473f753cba12d929f9f0d1b324ca921f4fadc068760cdde80d4f69be9a539ce1daadd9e8608114ec41085e724af3638b4c15c1e35f529ae05c6ae19cab3bc5216b65244a48ffab3220f3",
		"e9fb9e2adb346a960d9fe3f0fbea7b2d1160c0c6a96a45fe70f3c0423df06bacbd5f50a1bdb5bac0550c1952e14d4804646c51dca1afe3a9d976d5cd86c481d75781b9034414a33872b6d3191832adcc56758fac22cb1bb7b24171c3cce00f5c617b8e8c1501b87da41b98fecc317bd92c0b09e0c7eaf4cb3c80af74a0d932ff",
	},
	{
		"fc2f5c64ccd0930443c0f283ff13a17cdf604347ab205e4eea376d44219f37d49d34ee0442c57812fc24a8086d2bebebbdfbab161e499aee65f30196246fd4d509e28dcac22dd1c238f90fe70dac4bf4baea0e79cedec9484735d61f7c44e1f37475c0c6c09a4295127e9b11a8e3c6270f461502f25e3d189b1a028ad412d58b",
		"d3a8c0194c93dfc94b8377b840e120b883d1bd75b6a581a92d4209a87f3048ad65e4837841fe82e0a4694c78b8b91e15c01b43116f45461615a0c1465cc051f3a975ed6a20cd11031ddce1e658f9612e2ded9dc9c36cb73a04d2c8731bd3f6134619bf06c30be174601421be3a4100b85d17544ab4b2abf6e1316c4103ae9dbb",
	},
	{
		"c41102ab0794b12eddf14d2b11717213e7d65dddf220775cfc6cf9c9007b711d6127ff0f2d9cb584dd572521079b593947f5c37662d8869a477eff8f16c7582f70f5d19e49637ba7f8a170b5385249107046a28706284fb9b56b34b24724474bc3c3b08278c4e5df26e2b1902f84c2c8e3e550e9304b95775d162898fb8c5cd7",
		"ee2bd96ecf06fdd203a5fc3d3b5d7b2c7ada897bd40d61c285195e2e20341857547937e823fbabb04cde793933a9f7a2b4af9a5bdf13f2a4c4477bb01829e8edbaf28fe420e44a5d8a00744f86c4a67304c4be30188a3d49c3d8ab5324b8b4b32ae678f1887d0dfcd028997920de60f77b819015dcc42c84ccf11ccf431ffd5f",
	},
	{
		"d155607913aea00d64640758fa56d3735e3f92c73688b22ff56cd0053acd17d1b90d5598c77e42bada3e11a9ceb5b7d051f1ec26426348347d0cd23a03edfe6726cd15b9b62c32083dc16fddc8cec2d4f495bf7e9a1ff6c1f18eea0be5a5b7751e0964ef45fcfe54db44e82fd3a6b5bca598a316a45e59ffd4210f8806ee18c3",
		"eca730fe269f410194eff2a790f5ca1f67e326636e69bb30d06ff1bf3e086b7fefa07d9d67c683c2a17c168bb25232b49f598a57cae62d93102ac99c45afefb89394f2972cd2f16ad5ebd1617b7611dee937e69de71ef05164e0d0038d1b3d16ea6fe275ee92d7f3af596a0f321edbf9fa023a00ece9a945427156a8730f9a27",
	},
	{
		"dda89f954dd3b18b96c6c1e776923d05e5f0afa04b728b9a7a92d38d96a977dd71656329c7548bd87ecafde99716c24eef468cefcbc1aa4f4b7e54c2e67e036120d491f61783da231d1fa7723e901d82803f31a60e2c5a6d87b795959b57806f59394740bdd9db24acbc3becc46903519b81ca057e89ffe773e4813260c6739b",
		"d1dfed8b9f7529500772a9a5640a4065bf78d2bcca2b01731bc8e9fb02b748e4a5bb0c863d1a3c59064024860823f351903347517d883b5d1b5bb23fb46654d89db536391f400ef03fff690b50b43846dd47ee759b10341796120e5afe85d696b8329f13998df9cb4eb230ef5c5540a9356b91c28184fd4d4abf095e6d54323b",
	},
}

// PaillierKeys returns n pregenerated Paillier keys.
func PaillierKeys(n int) []*paillier.SecretKey {
	if n > len(primeHexes) {
		panic(fmt.Sprintf("test: only %d pregenerated Paillier keys available, %d requested", len(primeHexes), n))
	}
	keys := make([]*paillier.SecretKey, n)
	for i := 0; i < n; i++ {
		keys[i] = paillier.NewSecretKeyFromPrimes(natFromHex(primeHexes[i][0]), natFromHex(primeHexes[i][1]))
	}
	return keys
}

func natFromHex(s string) *saferith.Nat {
	data, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return new(saferith.Nat).SetBytes(data)
}

// GenerateConfigs runs the trusted dealer for n parties with pregenerated
// Paillier keys, so tests skip the prime search.
func GenerateConfigs(n, threshold int) (map[party.ID]*config.Config, party.IDSlice, error) {
	configs, err := keygen.KeygenWithKeys(n, threshold, 10*n, PaillierKeys(n))
	if err != nil {
		return nil, nil, err
	}
	var ids party.IDSlice
	for _, c := range configs {
		ids = c.PartyIDs()
		break
	}
	return configs, ids, nil
}
