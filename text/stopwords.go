package text

import "strings"

var stopWords = map[string]map[string]bool{
	"en": toSet(`a about above after again against all am an and any are as at be because been before
being below between both but by can could did do does doing down during each few for from further had has
have having he her here hers herself him himself his how i if in into is it its itself just me more most
my myself no nor not now of off on once only or other our ours ourselves out over own same she should so
some such than that the their theirs them themselves then there these they this those through to too under
until up very was we were what when where which while who whom why will with would you your yours yourself
yourselves`),
	"it": toSet(`a ad al alla alle allo agli ai anche avere che chi ci come con contro cui da dal dalla
dalle dallo dagli dai degli dei del della delle dello di dove e ed era erano essere gli ha hanno ho i il in
io la le lei lo loro lui ma mi mia mie miei mio ne negli nei nel nella nelle nello noi non nostro o per
perché più quale quando quella quelle quelli quello questa queste questi questo se sei si sia sono su sua
sue sui sul sulla sulle sullo suo suoi ti tra tu tua tue tuo tuoi un una uno vi voi è l dell all nell sull`),
	"fr": toSet(`à au aux avec ce ces cette dans de des du elle en et eux il ils je la le les leur lui ma
mais me même mes moi mon ne nos notre nous on ou où par pas pour qu que qui sa se ses son sur ta te tes
toi ton tu un une vos votre vous c d j l m n s t y été être avoir est sont était ont a`),
	"es": toSet(`a al algo como con contra cual cuando de del desde donde durante e el ella ellas ellos en
entre era es esa ese eso esta este esto estos ha han hasta la las le les lo los me mi mis muy más ni no
nos nosotros o os otra otro para pero por que quien se ser si sin sobre su sus también te tu tus un una
uno unos y ya yo él está están fue son`),
	"pt": toSet(`a ao aos as até com como da das de dela dele deles do dos e ela elas ele eles em entre era
essa esse esta este eu foi for há isso isto já la lhe mais mas me mesmo meu minha muito na nas nem no nos
nossa nosso num numa não o os ou para pela pelas pelo pelos por qual quando que quem se sem ser seu sua
são só também te tem um uma você à às é`),
}

func toSet(words string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(words) {
		set[w] = true
	}
	return set
}

// IsStopWord reports whether word is a stop word in lang. Unknown languages
// have no stop words.
func IsStopWord(lang, word string) bool {
	return stopWords[lang][strings.ToLower(word)]
}
