package entities

import "slices"

// Domínios enumerados do CRM. Os valores são gravados literalmente no banco
// e são compartilhados com o frontend; não renomeie.

type PropertyType string

const (
	PropertyTypeCasa        PropertyType = "casa"
	PropertyTypeApartamento PropertyType = "apartamento"
	PropertyTypeCobertura   PropertyType = "cobertura"
	PropertyTypeTerreno     PropertyType = "terreno"
	PropertyTypeComercial   PropertyType = "comercial"
	PropertyTypeRural       PropertyType = "rural"
	PropertyTypeLancamento  PropertyType = "lancamento"
)

var PropertyTypes = []PropertyType{
	PropertyTypeCasa, PropertyTypeApartamento, PropertyTypeCobertura, PropertyTypeTerreno,
	PropertyTypeComercial, PropertyTypeRural, PropertyTypeLancamento,
}

func (t PropertyType) IsValid() bool { return slices.Contains(PropertyTypes, t) }

type TransactionType string

const (
	TransactionTypeVenda   TransactionType = "venda"
	TransactionTypeLocacao TransactionType = "locacao"
	TransactionTypeAmbos   TransactionType = "ambos"
)

var TransactionTypes = []TransactionType{TransactionTypeVenda, TransactionTypeLocacao, TransactionTypeAmbos}

func (t TransactionType) IsValid() bool { return slices.Contains(TransactionTypes, t) }

type PropertyStatus string

const (
	PropertyStatusDisponivel PropertyStatus = "disponivel"
	PropertyStatusReservado  PropertyStatus = "reservado"
	PropertyStatusVendido    PropertyStatus = "vendido"
	PropertyStatusAlugado    PropertyStatus = "alugado"
	PropertyStatusInativo    PropertyStatus = "inativo"
)

var PropertyStatuses = []PropertyStatus{
	PropertyStatusDisponivel, PropertyStatusReservado, PropertyStatusVendido,
	PropertyStatusAlugado, PropertyStatusInativo,
}

func (s PropertyStatus) IsValid() bool { return slices.Contains(PropertyStatuses, s) }

type LeadSource string

const (
	LeadSourceSite           LeadSource = "site"
	LeadSourceWhatsapp       LeadSource = "whatsapp"
	LeadSourceInstagram      LeadSource = "instagram"
	LeadSourceFacebook       LeadSource = "facebook"
	LeadSourceIndicacao      LeadSource = "indicacao"
	LeadSourcePortalZap      LeadSource = "portal_zap"
	LeadSourcePortalVivareal LeadSource = "portal_vivareal"
	LeadSourcePortalOlx      LeadSource = "portal_olx"
	LeadSourceGoogle         LeadSource = "google"
	LeadSourceOutro          LeadSource = "outro"
)

var LeadSources = []LeadSource{
	LeadSourceSite, LeadSourceWhatsapp, LeadSourceInstagram, LeadSourceFacebook, LeadSourceIndicacao,
	LeadSourcePortalZap, LeadSourcePortalVivareal, LeadSourcePortalOlx, LeadSourceGoogle, LeadSourceOutro,
}

func (s LeadSource) IsValid() bool { return slices.Contains(LeadSources, s) }

// LeadStage é a posição do lead no funil. Não há validação de transição:
// qualquer estágio pode ir para qualquer outro.
type LeadStage string

const (
	LeadStageNovo            LeadStage = "novo"
	LeadStageContatoInicial  LeadStage = "contato_inicial"
	LeadStageQualificado     LeadStage = "qualificado"
	LeadStageVisitaAgendada  LeadStage = "visita_agendada"
	LeadStageVisitaRealizada LeadStage = "visita_realizada"
	LeadStageProposta        LeadStage = "proposta"
	LeadStageNegociacao      LeadStage = "negociacao"
	LeadStageFechadoGanho    LeadStage = "fechado_ganho"
	LeadStageFechadoPerdido  LeadStage = "fechado_perdido"
	LeadStageSemInteresse    LeadStage = "sem_interesse"
)

var LeadStages = []LeadStage{
	LeadStageNovo, LeadStageContatoInicial, LeadStageQualificado, LeadStageVisitaAgendada,
	LeadStageVisitaRealizada, LeadStageProposta, LeadStageNegociacao, LeadStageFechadoGanho,
	LeadStageFechadoPerdido, LeadStageSemInteresse,
}

func (s LeadStage) IsValid() bool { return slices.Contains(LeadStages, s) }

// IsClosed indica estágios terminais do funil
func (s LeadStage) IsClosed() bool {
	return s == LeadStageFechadoGanho || s == LeadStageFechadoPerdido || s == LeadStageSemInteresse
}

type ClientType string

const (
	ClientTypeComprador    ClientType = "comprador"
	ClientTypeLocatario    ClientType = "locatario"
	ClientTypeProprietario ClientType = "proprietario"
)

var ClientTypes = []ClientType{ClientTypeComprador, ClientTypeLocatario, ClientTypeProprietario}

func (t ClientType) IsValid() bool { return slices.Contains(ClientTypes, t) }

type Qualification string

const (
	QualificationQuente         Qualification = "quente"
	QualificationMorno          Qualification = "morno"
	QualificationFrio           Qualification = "frio"
	QualificationNaoQualificado Qualification = "nao_qualificado"
)

var Qualifications = []Qualification{
	QualificationQuente, QualificationMorno, QualificationFrio, QualificationNaoQualificado,
}

func (q Qualification) IsValid() bool { return slices.Contains(Qualifications, q) }

type BuyerProfile string

const (
	BuyerProfileInvestidor   BuyerProfile = "investidor"
	BuyerProfilePrimeiraCasa BuyerProfile = "primeira_casa"
	BuyerProfileUpgrade      BuyerProfile = "upgrade"
	BuyerProfileCurioso      BuyerProfile = "curioso"
	BuyerProfileIndeciso     BuyerProfile = "indeciso"
)

var BuyerProfiles = []BuyerProfile{
	BuyerProfileInvestidor, BuyerProfilePrimeiraCasa, BuyerProfileUpgrade,
	BuyerProfileCurioso, BuyerProfileIndeciso,
}

func (p BuyerProfile) IsValid() bool { return slices.Contains(BuyerProfiles, p) }

// Level é usado tanto para urgência quanto para prioridade
type Level string

const (
	LevelBaixa   Level = "baixa"
	LevelMedia   Level = "media"
	LevelAlta    Level = "alta"
	LevelUrgente Level = "urgente"
)

var Levels = []Level{LevelBaixa, LevelMedia, LevelAlta, LevelUrgente}

func (l Level) IsValid() bool { return slices.Contains(Levels, l) }

type InteractionType string

const (
	InteractionLigacao      InteractionType = "ligacao"
	InteractionWhatsapp     InteractionType = "whatsapp"
	InteractionEmail        InteractionType = "email"
	InteractionVisita       InteractionType = "visita"
	InteractionReuniao      InteractionType = "reuniao"
	InteractionProposta     InteractionType = "proposta"
	InteractionNota         InteractionType = "nota"
	InteractionStatusChange InteractionType = "status_change"
)

var InteractionTypes = []InteractionType{
	InteractionLigacao, InteractionWhatsapp, InteractionEmail, InteractionVisita,
	InteractionReuniao, InteractionProposta, InteractionNota, InteractionStatusChange,
}

func (t InteractionType) IsValid() bool { return slices.Contains(InteractionTypes, t) }

type MessageType string

const (
	MessageIncoming MessageType = "incoming"
	MessageOutgoing MessageType = "outgoing"
)

func (t MessageType) IsValid() bool { return t == MessageIncoming || t == MessageOutgoing }

type AiRole string

const (
	AiRoleUser      AiRole = "user"
	AiRoleAssistant AiRole = "assistant"
	AiRoleSystem    AiRole = "system"
)

func (r AiRole) IsValid() bool {
	return r == AiRoleUser || r == AiRoleAssistant || r == AiRoleSystem
}

// InterestType tem os mesmos valores de TransactionType, mas é um domínio separado no schema
type InterestType string

const (
	InterestVenda   InterestType = "venda"
	InterestLocacao InterestType = "locacao"
	InterestAmbos   InterestType = "ambos"
)

func (t InterestType) IsValid() bool {
	return t == InterestVenda || t == InterestLocacao || t == InterestAmbos
}

type WebhookStatus string

const (
	WebhookSuccess WebhookStatus = "success"
	WebhookError   WebhookStatus = "error"
	WebhookPending WebhookStatus = "pending"
)

func (s WebhookStatus) IsValid() bool {
	return s == WebhookSuccess || s == WebhookError || s == WebhookPending
}
