package vocab

// Default word lists for Hindi conversational-speech corpora. Callers that
// have a curated vocabulary resource should load it instead; these exist so
// the tool is usable out of the box.

// defaultCoreWords are high-frequency native Hindi word forms.
var defaultCoreWords = []string{
	"बात", "होता", "कि", "जनजाति", "पैसा", "लोग", "देखना", "था", "अब", "अच्छा",
	"कारण", "जीवन", "सही", "किताब", "स्कूल", "उधर", "उन्हें", "उनको", "चाहिए", "कुछ",
	"मैम", "देश", "भारत", "चाहते", "वहां", "तरफ", "काम",
}

// defaultCodeSwitchedWords are English loanwords as they appear in
// Devanagari transliteration, common in conversational Hindi speech.
var defaultCodeSwitchedWords = []string{
	"प्रोजेक्ट", "एरिया", "एटीट्यूड", "मैनेजर", "टेक्नोलॉजी", "इंटरनेट", "कंप्यूटर",
	"डेटा", "फाइल", "कमेंट", "लैपटॉप", "स्टूडेंट", "ट्रैफिक", "टॉपिक", "क्लासेस",
	"इम्प्रूवमेंट",
}

// Default returns a Vocabulary built from the bundled Hindi word lists.
func Default() *Vocabulary {
	words := make([]string, 0, len(defaultCoreWords)+len(defaultCodeSwitchedWords))
	words = append(words, defaultCoreWords...)
	words = append(words, defaultCodeSwitchedWords...)
	return New(words)
}
