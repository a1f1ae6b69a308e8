// Package kvstore define o armazenamento chave-valor compartilhado entre
// contextos de navegação (o análogo do store local do navegador). A lista de
// vendas em espera, os marcadores de dispensa/soneca de banner e as flags de
// configuração do dashboard vivem aqui.
package kvstore

// Chaves usadas pelo rastreador de vendas em espera
const (
	KeyHeldSales = "pos:held_sales"

	// Prefixos por banner; a chave completa é prefixo + chave do banner
	KeyBannerDismissalPrefix = "banner:dismissed:"
	KeyBannerSnoozePrefix    = "banner:snoozed:"
)

// Store é a abstração injetável do armazenamento compartilhado.
//
// Semântica de consistência: last-writer-wins na granularidade do valor
// inteiro (sem lock por item). Toda escrita notifica TODOS os assinantes,
// inclusive o contexto que escreveu: os handlers releem o estado completo
// a cada sinal, então a entrega at-least-once é idempotente.
type Store interface {
	// Get retorna o valor da chave e se ela existe
	Get(key string) (string, bool)
	// Set grava o valor e dispara a notificação de mudança
	Set(key, value string)
	// Delete remove a chave e dispara a notificação de mudança
	Delete(key string)
	// Subscribe registra um observador de mudanças; retorna a função
	// de cancelamento da assinatura
	Subscribe(fn func(key string)) (unsubscribe func())
}
