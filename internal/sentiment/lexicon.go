package sentiment

// Valences are on a -4..+4 scale. General-purpose entries follow the usual
// social-media lexicon values; market vocabulary is added on the same scale.
var defaultLexicon = map[string]float64{
	// general positive
	"good": 1.9, "great": 3.1, "excellent": 2.7, "amazing": 2.8, "awesome": 3.1,
	"best": 3.2, "better": 1.9, "nice": 1.8, "love": 3.2, "like": 2.0,
	"happy": 2.7, "glad": 2.0, "wonderful": 2.7, "fantastic": 2.6, "superb": 3.1,
	"outstanding": 3.2, "impressive": 2.3, "brilliant": 2.8, "success": 2.7,
	"successful": 2.8, "win": 2.8, "wins": 2.7, "won": 2.7, "winning": 2.4,
	"winner": 2.8, "positive": 2.6, "optimistic": 1.3, "optimism": 2.5,
	"confident": 2.2, "confidence": 2.3, "hope": 1.9, "hopes": 1.6, "hopeful": 1.6,
	"strong": 2.3, "stronger": 1.6, "strongest": 1.9, "strength": 2.2,
	"solid": 1.4, "healthy": 1.7, "benefit": 2.0, "benefits": 1.6, "gain": 2.4,
	"gains": 1.8, "gained": 1.6, "growth": 1.6, "grow": 1.6, "grows": 1.3,
	"growing": 1.5, "improve": 1.9, "improved": 2.1, "improves": 1.8,
	"improvement": 2.0, "improving": 1.8, "profit": 1.9, "profits": 1.9,
	"profitable": 1.9, "reward": 2.1, "rewarding": 2.4, "support": 1.7,
	"supports": 1.5, "supported": 1.3, "boost": 1.7, "boosts": 1.3,
	"boosted": 1.5, "celebrate": 2.7, "excited": 1.4, "exciting": 2.2,
	"favorable": 2.1, "fortunate": 1.9, "ideal": 2.4, "innovative": 1.9,
	"leading": 1.0, "lead": 0.8, "perfect": 2.7, "pleased": 1.9, "praise": 2.6,
	"proud": 2.1, "secure": 1.4, "safe": 1.9, "recommend": 1.5, "upside": 1.7,
	"welcome": 2.0, "agree": 1.5, "approve": 2.0, "approved": 1.8,
	"approval": 2.2, "thrive": 2.3, "thriving": 2.1, "resilient": 1.2,
	"efficient": 1.8, "advantage": 1.0, "opportunity": 1.8, "opportunities": 1.6,
	"record": 0.6, "top": 0.8, "easy": 1.9, "clear": 1.6, "smart": 1.7,
	"fine": 0.8, "ok": 1.2, "okay": 0.9, "yes": 1.7, "wow": 2.8,

	// market positive
	"bullish": 2.2, "bull": 1.5, "rally": 2.0, "rallies": 2.0, "rallied": 2.0,
	"surge": 1.9, "surges": 1.9, "surged": 1.9, "surging": 1.9, "soar": 2.2,
	"soars": 2.2, "soared": 2.2, "soaring": 2.2, "jump": 1.4, "jumps": 1.4,
	"jumped": 1.4, "climb": 1.2, "climbs": 1.2, "climbed": 1.2, "rise": 1.1,
	"rises": 1.1, "rose": 1.1, "rising": 1.1, "rebound": 1.4, "rebounds": 1.4,
	"rebounded": 1.4, "recover": 1.8, "recovers": 1.7, "recovered": 1.7,
	"recovery": 1.6, "beat": 1.5, "beats": 1.5, "topped": 1.3, "tops": 1.2,
	"exceed": 1.7, "exceeds": 1.7, "exceeded": 1.7, "upgrade": 1.9,
	"upgrades": 1.9, "upgraded": 1.9, "outperform": 1.9, "outperforms": 1.9,
	"outperformed": 1.9, "breakout": 1.6, "buyback": 1.2, "dividend": 0.9,
	"expansion": 1.2, "expands": 1.1, "expand": 1.1, "raises": 0.8,
	"raised": 0.8, "upbeat": 2.1, "accelerate": 1.2, "accelerates": 1.2,
	"momentum": 1.1, "robust": 2.0, "blowout": 1.8, "windfall": 2.0,
	"highs": 1.0, "high": 0.5, "boom": 2.0, "booming": 2.2,

	// general negative
	"bad": -2.5, "worse": -2.1, "worst": -3.1, "terrible": -2.5, "horrible": -2.5,
	"awful": -2.0, "poor": -2.1, "hate": -2.7, "sad": -2.1, "angry": -2.3,
	"fear": -2.2, "fears": -1.8, "feared": -2.2, "afraid": -2.2, "worry": -1.9,
	"worries": -1.8, "worried": -1.2, "worrying": -1.4, "concern": -0.6,
	"concerns": -0.4, "concerned": -1.1, "risk": -1.1, "risks": -1.1,
	"risky": -0.8, "danger": -2.4, "dangerous": -2.1, "threat": -2.4,
	"threatens": -1.6, "threatened": -2.0, "problem": -1.7, "problems": -1.7,
	"trouble": -1.7, "troubled": -2.0, "crisis": -3.1, "fail": -2.5,
	"fails": -1.8, "failed": -2.3, "failure": -2.3, "fault": -1.7,
	"weak": -1.9, "weaker": -1.9, "weakness": -1.6, "loss": -1.3,
	"losses": -1.7, "lose": -1.7, "loses": -1.3, "losing": -1.6, "lost": -1.3,
	"decline": -1.1, "declines": -1.1, "declined": -1.1, "declining": -1.2,
	"negative": -2.7, "pessimistic": -1.5, "pain": -2.3, "painful": -2.4,
	"hurt": -2.4, "hurts": -2.1, "damage": -2.2, "damaged": -1.9,
	"disappoint": -1.7, "disappoints": -1.6, "disappointed": -1.9,
	"disappointing": -2.2, "disappointment": -2.3, "warn": -0.4,
	"warns": -0.4, "warned": -1.1, "warning": -1.4, "doubt": -1.5,
	"doubts": -1.2, "uncertain": -1.2, "uncertainty": -1.4, "volatile": -1.1,
	"panic": -2.3, "chaos": -2.7, "scandal": -1.9, "fraud": -2.8,
	"fraudulent": -3.1, "scam": -2.7, "lawsuit": -1.3, "sue": -1.1,
	"sued": -1.2, "sues": -1.0, "probe": -1.0, "investigation": -0.8,
	"penalty": -2.0, "fined": -1.8, "ban": -2.6, "banned": -2.0,
	"bans": -2.0, "kill": -3.7, "killed": -3.5, "dead": -3.3, "death": -2.9,
	"war": -2.9, "attack": -2.1, "attacks": -1.9, "bankrupt": -2.6,
	"bankruptcy": -2.6, "default": -1.5, "defaults": -1.4, "layoffs": -1.8,
	"layoff": -1.8, "fired": -2.6, "cut": -1.1, "cuts": -1.2, "cutting": -0.9,
	"delay": -1.3, "delayed": -0.9, "delays": -1.5, "recall": -1.0,
	"recalls": -1.0, "shortage": -1.2, "shortfall": -1.6, "wrong": -2.1,
	"no": -1.2, "against": -0.4, "reject": -1.7, "rejected": -2.3,
	"rejects": -1.6, "struggle": -1.3, "struggles": -1.5, "struggling": -1.8,
	"hit": -0.3, "hits": -0.3, "halt": -0.7, "halted": -1.0, "suspend": -1.3,
	"suspended": -2.1,

	// market negative
	"bearish": -2.2, "bear": -1.0, "crash": -1.7, "crashes": -1.7, "crashed": -1.7,
	"plunge": -2.0, "plunges": -2.0, "plunged": -2.0, "plunging": -2.0,
	"tumble": -1.8, "tumbles": -1.8, "tumbled": -1.8, "slump": -1.7,
	"slumps": -1.7, "slumped": -1.7, "sink": -1.4, "sinks": -1.4, "sank": -1.4,
	"slide": -1.2, "slides": -1.2, "slid": -1.2, "drop": -1.1, "drops": -1.1,
	"dropped": -1.1, "fall": -1.1, "falls": -1.1, "fell": -1.1, "falling": -1.2,
	"selloff": -1.9, "sell-off": -1.9, "downgrade": -1.9, "downgrades": -1.9,
	"downgraded": -1.9, "underperform": -1.9, "underperforms": -1.9,
	"miss": -1.3, "misses": -1.3, "missed": -1.3, "downturn": -1.9,
	"recession": -2.3, "inflation": -0.8, "writedown": -1.6, "write-down": -1.6,
	"lower": -0.6, "lows": -1.0, "low": -1.1, "slowdown": -1.4, "slowing": -0.9,
	"stall": -1.0, "stalls": -1.0, "stalled": -1.0, "headwinds": -1.2,
	"downside": -1.4, "dilution": -1.0, "volatility": -0.9, "bubble": -0.7,
	"overvalued": -1.2, "short": -0.2, "shorts": -0.4, "gloom": -2.1,
	"gloomy": -2.3, "bleak": -2.3, "grim": -2.7,
}

// boosterWords scale the sentiment word that follows them. Positive values
// intensify, negative values dampen.
var boosterWords = map[string]float64{
	"absolutely": bIncr, "amazingly": bIncr, "completely": bIncr,
	"considerably": bIncr, "decidedly": bIncr, "deeply": bIncr,
	"enormously": bIncr, "entirely": bIncr, "especially": bIncr,
	"exceptionally": bIncr, "extremely": bIncr, "greatly": bIncr,
	"highly": bIncr, "hugely": bIncr, "incredibly": bIncr, "intensely": bIncr,
	"majorly": bIncr, "more": bIncr, "most": bIncr, "particularly": bIncr,
	"purely": bIncr, "quite": bIncr, "really": bIncr, "remarkably": bIncr,
	"so": bIncr, "substantially": bIncr, "thoroughly": bIncr, "totally": bIncr,
	"tremendously": bIncr, "uber": bIncr, "unbelievably": bIncr,
	"unusually": bIncr, "utterly": bIncr, "very": bIncr, "sharply": bIncr,
	"significantly": bIncr, "strongly": bIncr, "massively": bIncr,

	"almost": bDecr, "barely": bDecr, "hardly": bDecr, "less": bDecr,
	"little": bDecr, "marginally": bDecr, "occasionally": bDecr,
	"partly": bDecr, "scarcely": bDecr, "slightly": bDecr, "somewhat": bDecr,
	"modestly": bDecr, "mildly": bDecr,
}

// negationWords flip the polarity of a following sentiment word.
var negationWords = map[string]struct{}{
	"aint": {}, "arent": {}, "cannot": {}, "cant": {}, "couldnt": {},
	"darent": {}, "didnt": {}, "doesnt": {}, "dont": {}, "hadnt": {},
	"hasnt": {}, "havent": {}, "isnt": {}, "mightnt": {}, "mustnt": {},
	"neither": {}, "never": {}, "none": {}, "nope": {}, "nor": {}, "not": {},
	"nothing": {}, "nowhere": {}, "shouldnt": {}, "uhuh": {}, "wasnt": {},
	"werent": {}, "without": {}, "wont": {}, "wouldnt": {}, "rarely": {},
	"seldom": {}, "despite": {},
}
