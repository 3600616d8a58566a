package domain

import "fmt"

// Agent identifica um consultor de vendas do time.
// O conjunto é fechado: as três abas individuais da planilha e as colunas
// da aba de distribuição seguem exatamente esta ordem.
type Agent int

const (
	AgentLukas Agent = iota
	AgentSam
	AgentTobias
)

// AgentInfo contém os dados de apresentação e integração de um consultor
type AgentInfo struct {
	DisplayName string // Nome completo, usado como chave na resposta da API
	ShortName   string // Primeiro nome, usado nos textos de insight
	SheetName   string // Nome da aba individual na planilha
	Color       string // Cor usada pelo frontend nos gráficos
}

var agentInfos = map[Agent]AgentInfo{
	AgentLukas:  {DisplayName: "Lukas Eisele", ShortName: "Lukas", SheetName: "Lukas Eisele", Color: "#1B3A5C"},
	AgentSam:    {DisplayName: "Sam Holdenried", ShortName: "Sam", SheetName: "Sam Holdenried", Color: "#5BB8F5"},
	AgentTobias: {DisplayName: "Tobias Hagl", ShortName: "Tobias", SheetName: "Tobias Hagl", Color: "#22C55E"},
}

// Agents retorna todos os consultores na ordem das colunas da planilha
func Agents() []Agent {
	return []Agent{AgentLukas, AgentSam, AgentTobias}
}

// Info retorna os dados de apresentação do consultor
func (a Agent) Info() AgentInfo {
	return agentInfos[a]
}

// String implementa fmt.Stringer usando o nome completo
func (a Agent) String() string {
	return agentInfos[a].DisplayName
}

// AgentByDisplayName resolve um nome completo para o identificador do
// consultor. Nomes desconhecidos viram um erro detectável em vez de uma
// consulta silenciosa em um mapa.
func AgentByDisplayName(name string) (Agent, error) {
	for _, a := range Agents() {
		if agentInfos[a].DisplayName == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("consultor desconhecido: %q", name)
}
