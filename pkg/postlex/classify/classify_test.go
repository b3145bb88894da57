package classify

import "testing"

func TestIsChineseEmpty(t *testing.T) {
	if IsChinese(nil, 0.5) {
		t.Error("empty token list must not be Chinese")
	}
}

func TestIsChineseThresholdBoundary(t *testing.T) {
	// 4 tokens, threshold 0.5: floor(4*0.5)=2, so 2 ideograph tokens are
	// not enough and 3 are.
	twoOfFour := []string{"行情", "上涨", "btc", "moon"}
	if IsChinese(twoOfFour, 0.5) {
		t.Error("2 of 4 at threshold 0.5 must be English")
	}

	threeOfFour := []string{"行情", "上涨", "大跌", "moon"}
	if !IsChinese(threeOfFour, 0.5) {
		t.Error("3 of 4 at threshold 0.5 must be Chinese")
	}
}

func TestIsChineseAllEnglish(t *testing.T) {
	if IsChinese([]string{"buy", "the", "dip"}, 0.3) {
		t.Error("pure English must not be Chinese")
	}
}

func TestIsChineseMixedTokenCounts(t *testing.T) {
	// A token with any ideograph counts as an ideograph token.
	if !IsChinese([]string{"btc涨"}, 0.3) {
		t.Error("single mixed token exceeds floor(1*0.3)=0")
	}
}
