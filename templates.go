package tutor

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Topic aliases recognized by each strategy, compared after normalizeTopic.
var (
	additionTopics       = topicSet("adição", "soma", "somar", "addition")
	fractionTopics       = topicSet("fração", "frações", "fraction")
	multiplicationTopics = topicSet("multiplicação", "multiplicar", "multiplication")
	equationTopics       = topicSet("equação", "equações", "equação do 1º grau", "equation")
	derivativeTopics     = topicSet("derivada", "derivadas", "derivative")
)

const childAdditionGeneric = "Soma é juntar coisas. Se você junta 2 brinquedos com 3 brinquedos, tem 5 brinquedos."

const fractionExplanation = "Frações representam partes de um todo. Ex.: 1/2 é metade. " +
	"Para somar frações com mesmo denominador, some os numeradores."

const equationExplanation = "Equação do 1º grau: ax + b = 0. Isolamos x: x = -b/a (se a ≠ 0). " +
	"Exercício: resolva 2x + 4 = 0."

const derivativeExplanation = "Derivada é a taxa de variação instantânea. Formalmente, f'(x)=lim(h→0)(f(x+h)-f(x))/h."

func childAddition(a, b decimal.Decimal) string {
	return fmt.Sprintf("Vamos somar com objetos: se você tem %s maçãs e ganha %s maçã(s), agora tem %s maçãs. 😊",
		a, b, a.Add(b))
}

func childGeneric(topic string) string {
	return fmt.Sprintf("Explicação simples sobre '%s': vamos usar desenhos e exemplos do dia a dia.", topic)
}

func middleSchoolMultiplication(a, b decimal.Decimal) string {
	return fmt.Sprintf("%s × %s = %s. Multiplicação é somar %s repetidas %s vezes.", a, b, a.Mul(b), a, b)
}

func middleSchoolGeneric(topic string) string {
	return fmt.Sprintf("Explicação passo-a-passo sobre '%s', com exemplos e exercícios curtos.", topic)
}

func highSchoolGeneric(topic string) string {
	return fmt.Sprintf("Explicação formal e relacionada a aplicações para '%s'.", topic)
}

func topicSet(topics ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		set[normalizeTopic(t)] = struct{}{}
	}
	return set
}

func normalizeTopic(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

func matches(set map[string]struct{}, topic string) bool {
	_, ok := set[normalizeTopic(topic)]
	return ok
}
